package layertree

import (
	"errors"
	"fmt"
)

// Invariant violations reported by [Tree.Check].
var (
	ErrHeight  = errors.New("layertree: stale height")
	ErrBalance = errors.New("layertree: AVL balance violated")
	ErrOrder   = errors.New("layertree: key order violated")
	ErrLayer   = errors.New("layertree: malformed layer")
	ErrCount   = errors.New("layertree: layer count mismatch")
)

// Check validates the structural invariants of the tree:
//   - every stored height equals 1 + max(child heights)
//   - every balance factor is within [-1, 1]
//   - left keys are ≤ the node key and right keys are > the node key
//   - every layer is non-empty and no point exceeds its MaxY
//   - the layer count matches the number of nodes
//
// Check is meant for tests and debugging; it is O(n) in points.
func (t *Tree) Check() error {
	count := 0
	if _, err := check(t.root, nil, nil, &count); err != nil {
		return err
	}
	if count != t.layers {
		return fmt.Errorf("%w: counted %d nodes, tracked %d", ErrCount, count, t.layers)
	}
	return nil
}

// check verifies n's subtree against the open key bounds (lo, hi]: every
// key must be > *lo and ≤ *hi. It returns the recomputed height.
func check(n *node, lo, hi *int, count *int) (int, error) {
	if n == nil {
		return 0, nil
	}
	*count++

	key := n.layer.MaxY
	if lo != nil && key <= *lo {
		return 0, fmt.Errorf("%w: key %d not above %d", ErrOrder, key, *lo)
	}
	if hi != nil && key > *hi {
		return 0, fmt.Errorf("%w: key %d above %d", ErrOrder, key, *hi)
	}
	if len(n.layer.Points) == 0 {
		return 0, fmt.Errorf("%w: layer %d is empty", ErrLayer, key)
	}
	for _, p := range n.layer.Points {
		if p.Y > key {
			return 0, fmt.Errorf("%w: point %v above layer key %d", ErrLayer, p, key)
		}
	}

	lh, err := check(n.left, lo, &key, count)
	if err != nil {
		return 0, err
	}
	rh, err := check(n.right, &key, hi, count)
	if err != nil {
		return 0, err
	}

	h := 1 + max(lh, rh)
	if n.height != h {
		return 0, fmt.Errorf("%w: node %d stores %d, actual %d", ErrHeight, key, n.height, h)
	}
	if b := lh - rh; b > 1 || b < -1 {
		return 0, fmt.Errorf("%w: node %d has balance %d", ErrBalance, key, b)
	}
	return h, nil
}
