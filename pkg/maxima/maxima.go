package maxima

import (
	"slices"

	"github.com/matzehuels/maxima/pkg/complexity"
	"github.com/matzehuels/maxima/pkg/geom"
	"github.com/matzehuels/maxima/pkg/layertree"
)

// Result is the outcome of one sweep.
type Result struct {
	// Layers from highest MaxY to lowest, points sorted by y ascending.
	Layers []layertree.Layer `json:"layers"`

	// Ops is the counter value after the sweep; 0 without [WithCounter].
	Ops int64 `json:"-"`

	// Placements tallies how many points each assignment rule handled.
	Placements map[layertree.Placement]int `json:"-"`
}

// PointCount returns the total number of points across all layers.
func (r *Result) PointCount() int {
	n := 0
	for _, l := range r.Layers {
		n += len(l.Points)
	}
	return n
}

type config struct {
	ops     *complexity.Counter
	observe func(p geom.Point, placed layertree.Placement)
}

// Option configures [Compute] and [Sweep].
type Option func(*config)

// WithCounter charges sorting, tree work and loop iterations to c.
func WithCounter(c *complexity.Counter) Option {
	return func(cfg *config) { cfg.ops = c }
}

// WithObserver calls fn after each point is assigned, in sweep order.
func WithObserver(fn func(p geom.Point, placed layertree.Placement)) Option {
	return func(cfg *config) { cfg.observe = fn }
}

// Compute returns the multilayer maxima of points. The input slice is not
// modified. Zero points yield zero layers.
func Compute(points []geom.Point, opts ...Option) *Result {
	res := &Result{Placements: make(map[layertree.Placement]int, 3)}
	tally := func(_ geom.Point, placed layertree.Placement) {
		res.Placements[placed]++
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	observe := tally
	if next := cfg.observe; next != nil {
		observe = func(p geom.Point, placed layertree.Placement) {
			tally(p, placed)
			next(p, placed)
		}
	}

	tree := Sweep(points, WithCounter(cfg.ops), WithObserver(observe))
	res.Layers = tree.Descending()
	tree.Reset()

	res.Ops = cfg.ops.Value()
	return res
}

// Sweep sorts a copy of points into sweep order and folds every point into
// a fresh layer tree. The caller owns the returned tree.
func Sweep(points []geom.Point, opts ...Option) *layertree.Tree {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	order := SortForSweep(points, cfg.ops)
	tree := layertree.New(layertree.WithCounter(cfg.ops))
	for _, p := range order {
		placed := tree.Assign(p)
		cfg.ops.Inc() // loop iteration
		if cfg.observe != nil {
			cfg.observe(p, placed)
		}
	}
	return tree
}

// SortForSweep returns a copy of points ordered by x descending, then y
// descending; exact duplicates keep their input order. Each comparison is
// charged to ops, which may be nil.
func SortForSweep(points []geom.Point, ops *complexity.Counter) []geom.Point {
	order := slices.Clone(points)
	slices.SortStableFunc(order, func(a, b geom.Point) int {
		ops.Inc()
		return geom.CompareSweep(a, b)
	})
	return order
}
