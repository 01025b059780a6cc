// Package maxima computes the multilayer maxima decomposition of a set of
// 2D integer points.
//
// [Compute] sorts the points by x descending (ties by y descending, then
// input order), folds them one at a time into a [layertree.Tree], and
// returns the layers from the highest maximum y to the lowest, each sorted
// by y ascending.
//
// # Example
//
//	res := maxima.Compute([]geom.Point{{X: 1, Y: 5}, {X: 2, Y: 3}, {X: 3, Y: 1}})
//	for _, l := range res.Layers {
//	    fmt.Println(l.MaxY, l.Points)
//	}
//
// # Cost
//
// Sorting is O(n log n) and every assignment is an O(log L) tree search
// plus at most one O(log L) insertion, where L is the number of layers.
// Pass [WithCounter] to record unit costs for complexity measurements.
package maxima
