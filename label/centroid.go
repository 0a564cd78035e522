// SPDX-License-Identifier: MIT

package label

import (
	"fmt"
	"math"

	"github.com/erikjber/plsomlib/grid"
	"github.com/erikjber/plsomlib/metric"
	"github.com/erikjber/plsomlib/som"
)

// Option configures a CentroidLabeller.
type Option func(*CentroidLabeller)

// WithMetric sets the metric Closest measures in. Panics on nil.
func WithMetric(m metric.Metric) Option {
	if m == nil {
		panic("label: WithMetric(nil)")
	}

	return func(c *CentroidLabeller) { c.metric = m }
}

// nodeSamples accumulates a running sum; the mean is cached until the next
// sample arrives at the node.
type nodeSamples struct {
	sum      []float64
	n        int
	centroid []float64 // nil when stale
}

// CentroidLabeller labels each node with the mean of the sample vectors
// assigned to it. Not safe for concurrent use.
type CentroidLabeller struct {
	dim    int
	nodes  *grid.Grid[*nodeSamples]
	metric metric.Metric
}

// NewCentroid returns an empty labeller for dim-long samples over a grid of
// shape dims. Distances default to Euclidean.
// Errors: ErrBadDimension, ErrBadShape, and ErrDimensionMismatch for a
// fixed-length metric whose length is not dim.
func NewCentroid(dim int, dims []int, opts ...Option) (*CentroidLabeller, error) {
	if dim < 1 {
		return nil, fmt.Errorf("label.NewCentroid(%d): %w", dim, ErrBadDimension)
	}
	g, err := grid.New[*nodeSamples](dims...)
	if err != nil {
		return nil, wrapGridErr("NewCentroid", err)
	}
	c := &CentroidLabeller{dim: dim, nodes: g, metric: metric.Euclidean{}}
	for _, opt := range opts {
		opt(c)
	}
	if err = metric.CheckDim(c.metric, dim); err != nil {
		return nil, fmt.Errorf("label.NewCentroid: %w: %w", ErrDimensionMismatch, err)
	}

	return c, nil
}

// FromMap classifies every sample with m and adds it at the winning node.
// The map's weights are not modified.
//
// Errors: those of som.Map.Classify, wrapped with the sample index.
func FromMap(m *som.Map, samples [][]float64, opts ...Option) (*CentroidLabeller, error) {
	c, err := NewCentroid(m.InputDimension(), m.OutputDimensions(), opts...)
	if err != nil {
		return nil, err
	}
	for i, x := range samples {
		w, err := m.Classify(x)
		if err != nil {
			return nil, fmt.Errorf("label.FromMap: sample %d: %w", i, err)
		}
		if err = c.AddSample(x, w); err != nil {
			return nil, fmt.Errorf("label.FromMap: sample %d: %w", i, err)
		}
	}

	return c, nil
}

// Dim returns the sample length.
func (c *CentroidLabeller) Dim() int { return c.dim }

// Shape returns a copy of the grid shape.
func (c *CentroidLabeller) Shape() []int { return c.nodes.Shape() }

func (c *CentroidLabeller) checkVector(method string, v []float64) error {
	if len(v) != c.dim {
		return fmt.Errorf("label.%s(len %d, want %d): %w", method, len(v), c.dim, ErrDimensionMismatch)
	}

	return nil
}

// AddSample assigns a copy of value to the node at coord and invalidates
// that node's cached centroid.
// Errors: ErrDimensionMismatch, ErrOutOfRange.
func (c *CentroidLabeller) AddSample(value []float64, coord []int) error {
	if err := c.checkVector("AddSample", value); err != nil {
		return err
	}
	ns, err := c.nodes.At(coord)
	if err != nil {
		return wrapGridErr("AddSample", err)
	}
	if ns == nil {
		ns = &nodeSamples{sum: make([]float64, c.dim)}
		_ = c.nodes.Set(coord, ns) // coord validated by At
	}
	for k, x := range value {
		ns.sum[k] += x
	}
	ns.n++
	ns.centroid = nil

	return nil
}

// Samples returns how many samples were added at coord.
func (c *CentroidLabeller) Samples(coord []int) (int, error) {
	ns, err := c.nodes.At(coord)
	if err != nil {
		return 0, wrapGridErr("Samples", err)
	}
	if ns == nil {
		return 0, nil
	}

	return ns.n, nil
}

// mean returns the cached centroid of ns, computing it if stale.
func (ns *nodeSamples) mean() []float64 {
	if ns.centroid == nil {
		ns.centroid = make([]float64, len(ns.sum))
		inv := 1 / float64(ns.n)
		for k, s := range ns.sum {
			ns.centroid[k] = s * inv
		}
	}

	return ns.centroid
}

// Centroid returns a copy of the mean sample at coord; ok is false when the
// node has no samples.
// Errors: ErrOutOfRange.
func (c *CentroidLabeller) Centroid(coord []int) ([]float64, bool, error) {
	ns, err := c.nodes.At(coord)
	if err != nil {
		return nil, false, wrapGridErr("Centroid", err)
	}
	if ns == nil {
		return nil, false, nil
	}

	return append([]float64(nil), ns.mean()...), true, nil
}

// Closest returns the coordinate of the labelled node whose centroid is
// nearest to input. Ties go to the first node in offset order.
// Errors: ErrDimensionMismatch, ErrNoLabels.
// Complexity: O(nodes × dim).
func (c *CentroidLabeller) Closest(input []float64) ([]int, error) {
	if err := c.checkVector("Closest", input); err != nil {
		return nil, err
	}
	best := -1
	bestDist := math.Inf(1)
	for i, ns := range c.nodes.Values() {
		if ns == nil {
			continue
		}
		d := c.metric.Distance(ns.mean(), input)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return nil, fmt.Errorf("label.Closest: %w", ErrNoLabels)
	}

	coord, err := c.nodes.Coordinate(best)
	if err != nil {
		return nil, wrapGridErr("Closest", err)
	}

	return coord, nil
}
