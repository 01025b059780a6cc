package io

import (
	"math"
	"math/rand/v2"

	"github.com/matzehuels/maxima/pkg/geom"
)

const (
	// DefaultCoordMax is the default upper bound for generated coordinates.
	DefaultCoordMax = 1000

	// MaxCoord is the largest upper bound [Generate] accepts.
	MaxCoord = math.MaxInt32
)

// Generate returns n points with coordinates drawn uniformly from
// [0, coordMax] using rng. coordMax must be within [0, MaxCoord].
func Generate(rng *rand.Rand, n, coordMax int) []geom.Point {
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = geom.Point{X: rng.IntN(coordMax + 1), Y: rng.IntN(coordMax + 1)}
	}
	return pts
}
