// Package geom defines the integer point type shared by the maxima packages.
package geom

import (
	"cmp"
	"fmt"
)

// Point is an immutable pair of integer coordinates.
//
// Points carry no identity beyond their coordinates. Two points with equal
// coordinates are distinct inputs and are tracked independently.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String formats the point the way output files print it: "x, y".
func (p Point) String() string {
	return fmt.Sprintf("%d, %d", p.X, p.Y)
}

// CompareSweep orders points for the right-to-left sweep: x descending,
// then y descending. Points equal under both coordinates compare as 0.
func CompareSweep(a, b Point) int {
	if c := cmp.Compare(b.X, a.X); c != 0 {
		return c
	}
	return cmp.Compare(b.Y, a.Y)
}

// CompareY orders points by y ascending.
func CompareY(a, b Point) int {
	return cmp.Compare(a.Y, b.Y)
}
