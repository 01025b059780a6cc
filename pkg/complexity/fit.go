package complexity

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ErrTooFewSamples is returned by [Fit] when fewer than two distinct
// n·log2(n) values are available.
var ErrTooFewSamples = errors.New("complexity: need at least two distinct sample sizes")

// Model is a fitted cost curve T ≈ A·n·log2(n) + B.
type Model struct {
	A  float64 // slope against n·log2(n)
	B  float64 // intercept
	R2 float64 // coefficient of determination
}

// At evaluates the model at n.
func (m Model) At(n float64) float64 {
	return m.A*NLogN(n) + m.B
}

// NLogN returns n·log2(n), defined as 0 for n <= 1.
func NLogN(n float64) float64 {
	if n <= 1 {
		return 0
	}
	return n * math.Log2(n)
}

// Fit estimates a [Model] from samples by ordinary least squares.
func Fit(samples []Sample) (Model, error) {
	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	distinct := make(map[float64]struct{}, len(samples))
	for i, s := range samples {
		xs[i] = NLogN(float64(s.N))
		ys[i] = float64(s.T)
		distinct[xs[i]] = struct{}{}
	}
	if len(distinct) < 2 {
		return Model{}, ErrTooFewSamples
	}

	b, a := stat.LinearRegression(xs, ys, nil, false)
	return Model{
		A:  a,
		B:  b,
		R2: stat.RSquared(xs, ys, nil, b, a),
	}, nil
}
