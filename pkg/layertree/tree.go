package layertree

import (
	"fmt"

	"github.com/matzehuels/maxima/pkg/complexity"
	"github.com/matzehuels/maxima/pkg/geom"
)

// Placement reports which rule [Tree.Assign] applied to a point.
type Placement int

const (
	// PlacementNew means the point started a new layer.
	PlacementNew Placement = iota
	// PlacementRaise means the point joined its floor layer and raised its key.
	PlacementRaise
	// PlacementJoin means the point joined its floor layer unchanged.
	PlacementJoin
)

func (p Placement) String() string {
	switch p {
	case PlacementNew:
		return "new"
	case PlacementRaise:
		return "raise"
	case PlacementJoin:
		return "join"
	}
	return fmt.Sprintf("Placement(%d)", int(p))
}

type node struct {
	layer       Layer
	height      int
	left, right *node
}

// Tree is an AVL tree of layers keyed by MaxY.
//
// The zero value is an empty tree without cost accounting. A Tree is not
// safe for concurrent use.
type Tree struct {
	root   *node
	layers int
	ops    *complexity.Counter
}

// Option configures a [Tree].
type Option func(*Tree)

// WithCounter charges the tree's primitive steps to c.
func WithCounter(c *complexity.Counter) Option {
	return func(t *Tree) { t.ops = c }
}

// New returns an empty tree.
func New(opts ...Option) *Tree {
	t := &Tree{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Len returns the number of layers.
func (t *Tree) Len() int { return t.layers }

// Height returns the tree height; 0 for an empty tree.
func (t *Tree) Height() int { return height(t.root) }

// IsEmpty reports whether the tree holds no layers.
func (t *Tree) IsEmpty() bool { return t.root == nil }

// Reset releases every layer and point buffer.
func (t *Tree) Reset() {
	t.root = nil
	t.layers = 0
}

// Insert adds a new layer keyed by p.Y that holds only p, then rebalances.
func (t *Tree) Insert(p geom.Point) {
	t.root = t.insert(t.root, p)
	t.layers++
}

func (t *Tree) insert(n *node, p geom.Point) *node {
	t.ops.Inc() // nil check
	if n == nil {
		t.ops.Add(2) // append
		return &node{layer: newLayer(p), height: 1}
	}

	if p.Y <= n.layer.MaxY {
		n.left = t.insert(n.left, p)
	} else {
		n.right = t.insert(n.right, p)
	}
	t.ops.Add(1 + 3 + 1) // child assignment, height update, balance factor
	n.height = 1 + max(height(n.left), height(n.right))

	return t.rebalance(n, p.Y)
}

// Floor returns the layer with the largest MaxY ≤ y, or nil if every
// layer's MaxY exceeds y.
//
// The returned layer stays owned by the tree; it is only valid until the
// next [Tree.Reset].
func (t *Tree) Floor(y int) *Layer {
	if n := t.floor(y); n != nil {
		return &n.layer
	}
	return nil
}

func (t *Tree) floor(y int) *node {
	var best *node
	for curr := t.root; curr != nil; {
		t.ops.Inc()
		if curr.layer.MaxY <= y {
			best = curr
			curr = curr.right
		} else {
			curr = curr.left
		}
	}
	return best
}

// Append adds p to l's point buffer without changing its key.
func (t *Tree) Append(l *Layer, p geom.Point) {
	l.Points = append(l.Points, p)
	t.ops.Add(2) // assignment, increment
}

// Bump raises l's key to y in place, without restructuring the tree.
//
// Bump panics if y is below the current key; keys never shrink.
func (t *Tree) Bump(l *Layer, y int) {
	if y < l.MaxY {
		panic(fmt.Sprintf("layertree: Bump(%d) below current key %d", y, l.MaxY))
	}
	l.MaxY = y
}

// Assign places p into the tree according to the floor rule and reports
// which rule applied. Points must be assigned in decreasing x order for the
// layers to be the multilayer maxima decomposition.
func (t *Tree) Assign(p geom.Point) Placement {
	n := t.floor(p.Y)
	switch {
	case n == nil:
		t.Insert(p)
		return PlacementNew
	case p.Y > n.layer.MaxY:
		t.Bump(&n.layer, p.Y)
		t.Append(&n.layer, p)
		return PlacementRaise
	default:
		t.Append(&n.layer, p)
		return PlacementJoin
	}
}
