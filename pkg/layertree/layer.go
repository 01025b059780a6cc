package layertree

import (
	"slices"

	"github.com/matzehuels/maxima/pkg/geom"
)

// initialCapacity is the starting buffer size of a new layer.
const initialCapacity = 2

// Layer is a group of points sharing one dominance tier.
//
// MaxY only grows over the layer's lifetime and Points is append-only.
type Layer struct {
	MaxY   int          `json:"max_y"`
	Points []geom.Point `json:"points"`
}

// newLayer returns a layer holding only p.
func newLayer(p geom.Point) Layer {
	pts := make([]geom.Point, 1, initialCapacity)
	pts[0] = p
	return Layer{MaxY: p.Y, Points: pts}
}

// Len returns the number of points in the layer.
func (l *Layer) Len() int { return len(l.Points) }

// clone returns a copy whose point buffer is not shared with l.
func (l *Layer) clone() Layer {
	return Layer{MaxY: l.MaxY, Points: slices.Clone(l.Points)}
}
