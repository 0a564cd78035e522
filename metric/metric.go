// SPDX-License-Identifier: MIT

package metric

import (
	"fmt"
	"math"
)

// Metric is a distance in input space and in grid (output) space.
type Metric interface {
	// Distance returns the distance between two equal-length real vectors.
	// Panics if len(a) != len(b).
	Distance(a, b []float64) float64

	// CoordDistance returns the distance between two equal-length grid
	// coordinates, compared as reals. Panics if len(a) != len(b).
	CoordDistance(a, b []int) float64
}

// Compile-time conformance.
var (
	_ Metric = Euclidean{}
	_ Metric = SquaredEuclidean{}
	_ Metric = (*WeightedEuclidean)(nil)
)

// Fixed is a Metric that only accepts vectors of one length, such as a
// WeightedEuclidean with one weight per axis.
type Fixed interface {
	Metric
	Dim() int
}

// CheckDim reports whether m accepts vectors of length n. Metrics that do not
// implement Fixed accept any length.
// Errors: ErrDimensionMismatch.
func CheckDim(m Metric, n int) error {
	if f, ok := m.(Fixed); ok && f.Dim() != n {
		return fmt.Errorf("metric.CheckDim(dim %d, want %d): %w", f.Dim(), n, ErrDimensionMismatch)
	}

	return nil
}

// Distance is the checked form of m.Distance(a, b).
// Errors: ErrDimensionMismatch when the lengths differ, or differ from the
// length a Fixed metric accepts.
// Complexity: O(len(a)).
func Distance(m Metric, a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("metric.Distance(len %d, len %d): %w", len(a), len(b), ErrDimensionMismatch)
	}
	if err := CheckDim(m, len(a)); err != nil {
		return 0, fmt.Errorf("metric.Distance: %w", err)
	}

	return m.Distance(a, b), nil
}

// Euclidean is the L2 distance sqrt(Σ (a[i]-b[i])²).
type Euclidean struct{}

// Distance implements Metric.
func (Euclidean) Distance(a, b []float64) float64 {
	return math.Sqrt(squaredSum(a, b))
}

// CoordDistance implements Metric.
func (Euclidean) CoordDistance(a, b []int) float64 {
	return math.Sqrt(squaredCoordSum(a, b))
}

// SquaredEuclidean is Σ (a[i]-b[i])², cheaper than Euclidean when only the
// ordering of distances matters.
type SquaredEuclidean struct{}

// Distance implements Metric.
func (SquaredEuclidean) Distance(a, b []float64) float64 { return squaredSum(a, b) }

// CoordDistance implements Metric.
func (SquaredEuclidean) CoordDistance(a, b []int) float64 { return squaredCoordSum(a, b) }

func squaredSum(a, b []float64) float64 {
	if len(a) != len(b) {
		panic(panicLengthMismatch)
	}
	var (
		sum float64
		d   float64
		i   int
	)
	for i = range a {
		d = a[i] - b[i]
		sum += d * d
	}

	return sum
}

func squaredCoordSum(a, b []int) float64 {
	if len(a) != len(b) {
		panic(panicLengthMismatch)
	}
	var (
		sum float64
		d   float64
		i   int
	)
	for i = range a {
		d = float64(a[i] - b[i])
		sum += d * d
	}

	return sum
}
