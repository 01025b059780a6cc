package maxima

import (
	"errors"
	"fmt"

	"github.com/matzehuels/maxima/pkg/geom"
)

// Errors reported by [Verify].
var (
	ErrLayerOrder = errors.New("maxima: layers not in decreasing MaxY order")
	ErrPointOrder = errors.New("maxima: layer points not sorted by y")
	ErrLayerKey   = errors.New("maxima: layer MaxY does not match its points")
	ErrMissing    = errors.New("maxima: input point missing from output")
	ErrExtra      = errors.New("maxima: output point not in input")
)

// Verify checks res against the input it was computed from:
//   - layers are in strictly decreasing MaxY order
//   - points within a layer are in non-decreasing y order
//   - each layer's MaxY is the largest y among its points
//   - every input point appears in exactly one layer, duplicates included
func Verify(input []geom.Point, res *Result) error {
	seen := make(map[geom.Point]int, len(input))
	for _, p := range input {
		seen[p]++
	}

	for i, l := range res.Layers {
		if i > 0 && l.MaxY >= res.Layers[i-1].MaxY {
			return fmt.Errorf("%w: layer %d has %d after %d", ErrLayerOrder, i, l.MaxY, res.Layers[i-1].MaxY)
		}
		if len(l.Points) == 0 {
			return fmt.Errorf("%w: layer %d is empty", ErrLayerKey, i)
		}
		top := l.Points[0].Y
		for j, p := range l.Points {
			if j > 0 && p.Y < l.Points[j-1].Y {
				return fmt.Errorf("%w: layer %d at %v", ErrPointOrder, i, p)
			}
			top = max(top, p.Y)
			if seen[p] == 0 {
				return fmt.Errorf("%w: %v", ErrExtra, p)
			}
			seen[p]--
		}
		if top != l.MaxY {
			return fmt.Errorf("%w: layer %d has MaxY %d, highest point %d", ErrLayerKey, i, l.MaxY, top)
		}
	}

	for p, left := range seen {
		if left > 0 {
			return fmt.Errorf("%w: %v (%d copies)", ErrMissing, p, left)
		}
	}
	return nil
}
