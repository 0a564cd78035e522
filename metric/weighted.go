// SPDX-License-Identifier: MIT

package metric

import (
	"fmt"
	"math"
)

// WeightedEuclidean is sqrt(Σ w[i]·(a[i]-b[i])²) with fixed per-axis weights.
// Vectors passed to it must have the same length as the weight vector.
type WeightedEuclidean struct {
	w []float64
}

// NewWeightedEuclidean validates and copies the axis weights.
//
// Errors: ErrBadWeights when w is empty or holds a negative, NaN or Inf value.
//
// Complexity: O(len(w)).
func NewWeightedEuclidean(w []float64) (*WeightedEuclidean, error) {
	if len(w) == 0 {
		return nil, fmt.Errorf("metric.NewWeightedEuclidean: empty: %w", ErrBadWeights)
	}
	cp := make([]float64, len(w))
	var i int
	for i = range w {
		if math.IsNaN(w[i]) || math.IsInf(w[i], 0) || w[i] < 0 {
			return nil, fmt.Errorf("metric.NewWeightedEuclidean: axis %d=%v: %w", i, w[i], ErrBadWeights)
		}
		cp[i] = w[i]
	}

	return &WeightedEuclidean{w: cp}, nil
}

var _ Fixed = (*WeightedEuclidean)(nil)

// Dim returns the number of axis weights, the only vector length accepted.
func (m *WeightedEuclidean) Dim() int { return len(m.w) }

// Weights returns a copy of the axis weights.
func (m *WeightedEuclidean) Weights() []float64 {
	return append([]float64(nil), m.w...)
}

// Distance implements Metric. Panics if a, b and the weights differ in length.
func (m *WeightedEuclidean) Distance(a, b []float64) float64 {
	if len(a) != len(b) || len(a) != len(m.w) {
		panic(panicLengthMismatch)
	}
	var (
		sum float64
		d   float64
		i   int
	)
	for i = range a {
		d = a[i] - b[i]
		sum += d * d * m.w[i]
	}

	return math.Sqrt(sum)
}

// CoordDistance implements Metric. Panics if a, b and the weights differ in length.
func (m *WeightedEuclidean) CoordDistance(a, b []int) float64 {
	if len(a) != len(b) || len(a) != len(m.w) {
		panic(panicLengthMismatch)
	}
	var (
		sum float64
		d   float64
		i   int
	)
	for i = range a {
		d = float64(a[i] - b[i])
		sum += d * d * m.w[i]
	}

	return math.Sqrt(sum)
}
