// SPDX-License-Identifier: MIT

// Package diameter keeps a running lower-bound estimate of the diameter
// (largest pairwise distance) of a stream of input vectors, using at most
// dim+1 stored points.
//
// Update rule (greedy, online):
//  1. Measure the distance from the new input to every buffered point;
//     remember the largest (maxNew) and the index of the closest (minIdx).
//     An empty buffer gives maxNew = 0.
//  2. If maxNew > MaxDiameter (strictly): MaxDiameter = maxNew and a copy of
//     the input is appended; if the buffer now exceeds dim+1 points, the
//     entry at minIdx is evicted.
//  3. Otherwise the input is dropped and nothing changes.
//
// MaxDiameter starts at -1 (undefined), becomes 0 after the first input and
// never decreases. Only inputs that push the estimate outward are stored.
package diameter

import (
	"fmt"
	"math"

	"github.com/erikjber/plsomlib/metric"
)

// undefinedDiameter is the estimate before any input has been seen.
const undefinedDiameter = -1.0

// Option configures a Buffer.
type Option func(*Buffer)

// WithMetric sets the metric distances are measured in. Panics on nil.
// Changing metrics after inputs were seen is not supported; set it at New.
func WithMetric(m metric.Metric) Option {
	if m == nil {
		panic("diameter: WithMetric(nil)")
	}

	return func(b *Buffer) { b.metric = m }
}

// Buffer is the bounded reservoir of extremal points plus the diameter estimate.
// Not safe for concurrent use.
type Buffer struct {
	dim    int
	points [][]float64
	max    float64
	metric metric.Metric
}

// New returns an empty buffer for inputs of length dim, capped at dim+1 points.
// Errors: ErrBadDimension when dim < 1.
func New(dim int, opts ...Option) (*Buffer, error) {
	if dim < 1 {
		return nil, fmt.Errorf("diameter.New(%d): %w", dim, ErrBadDimension)
	}
	b := &Buffer{
		dim:    dim,
		points: make([][]float64, 0, dim+2),
		max:    undefinedDiameter,
		metric: metric.Euclidean{},
	}
	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

// Update feeds one input into the estimate and reports whether the diameter
// grew (i.e. the input was stored).
//
// Errors: ErrDimensionMismatch when len(input) != dim; state is unchanged.
//
// Complexity: O(Cap() × dim).
func (b *Buffer) Update(input []float64) (bool, error) {
	if len(input) != b.dim {
		return false, fmt.Errorf("diameter.Update(len %d, want %d): %w", len(input), b.dim, ErrDimensionMismatch)
	}

	var (
		minIdx  int
		minDist = math.MaxFloat64
		maxNew  float64
		d       float64
		i       int
	)
	for i = range b.points {
		d = b.metric.Distance(input, b.points[i])
		if d < minDist {
			minDist = d
			minIdx = i
		}
		if d > maxNew {
			maxNew = d
		}
	}

	if !(maxNew > b.max) {
		return false, nil
	}

	b.max = maxNew
	b.points = append(b.points, append([]float64(nil), input...))
	// minIdx indexes the pre-append buffer; the new point sits after it.
	if len(b.points) > b.dim+1 {
		b.points = append(b.points[:minIdx], b.points[minIdx+1:]...)
	}

	return true, nil
}

// MaxDiameter returns the current estimate: -1 before any input, then >= 0
// and non-decreasing.
func (b *Buffer) MaxDiameter() float64 { return b.max }

// Defined reports whether the estimate is usable as a divisor (> 0). It is
// false until two distinct inputs have been seen.
func (b *Buffer) Defined() bool { return b.max > 0 }

// Len returns the number of buffered points.
func (b *Buffer) Len() int { return len(b.points) }

// Cap returns the maximum number of buffered points (dim+1).
func (b *Buffer) Cap() int { return b.dim + 1 }

// Dim returns the expected input length.
func (b *Buffer) Dim() int { return b.dim }

// Points returns deep copies of the buffered points in insertion order.
func (b *Buffer) Points() [][]float64 {
	out := make([][]float64, len(b.points))
	for i := range b.points {
		out[i] = append([]float64(nil), b.points[i]...)
	}

	return out
}

// Reset forgets every point and returns the estimate to undefined.
func (b *Buffer) Reset() {
	b.points = b.points[:0]
	b.max = undefinedDiameter
}
