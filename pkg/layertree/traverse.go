package layertree

import (
	"slices"

	"github.com/matzehuels/maxima/pkg/geom"
)

// Walk visits layers in strictly decreasing key order (reverse in-order)
// until fn returns false. The layers passed to fn are owned by the tree and
// must not be retained.
func (t *Tree) Walk(fn func(l *Layer) bool) {
	walkDesc(t.root, fn)
}

func walkDesc(n *node, fn func(l *Layer) bool) bool {
	if n == nil {
		return true
	}
	if !walkDesc(n.right, fn) {
		return false
	}
	if !fn(&n.layer) {
		return false
	}
	return walkDesc(n.left, fn)
}

// Descending returns all layers from highest MaxY to lowest. Each layer's
// points are first sorted by y ascending (stable, so equal y keep their
// arrival order). The returned layers are copies.
func (t *Tree) Descending() []Layer {
	out := make([]Layer, 0, t.layers)
	t.Walk(func(l *Layer) bool {
		slices.SortStableFunc(l.Points, func(a, b geom.Point) int {
			t.ops.Inc()
			return geom.CompareY(a, b)
		})
		out = append(out, l.clone())
		return true
	})
	return out
}
