// Package complexity measures how much work a maxima sweep performs.
//
// A [Counter] accumulates unit costs for the primitive steps of the sweep
// (comparisons, buffer appends, rotations, height updates). The counter is
// an ordinary value owned by the caller and handed to the algorithm
// explicitly; there is no package-level state.
//
// Runs are recorded in an append-only log of "n,T" lines, where n is the
// number of input points and T the counter value. [ReadLog] loads such a
// log, [Fit] estimates T ≈ a·n·log2(n) + b by least squares, and [Plot]
// draws the samples together with the fitted curve.
//
// # Log format
//
//	10,412
//	11,467
//	12,530
//
// One record per line, no header. Blank lines are ignored on read.
package complexity
