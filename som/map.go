// SPDX-License-Identifier: MIT

package som

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/erikjber/plsomlib/grid"
	"github.com/erikjber/plsomlib/metric"
	"github.com/erikjber/plsomlib/neighbourhood"
)

// ---------- error context tags ----------

const (
	ctxNew          = "New"
	ctxSetInput     = "SetInput"
	ctxTrain        = "Train"
	ctxClassify     = "Classify"
	ctxWeights      = "Weights"
	ctxSetWeights   = "SetWeights"
	ctxSetNeighbour = "SetNeighbourhoodRange"
)

// Map is a self-organizing map: a grid of weight vectors plus the transient
// state of the most recent input.
//
// A Map is not safe for concurrent use. Separate maps share nothing mutable
// and can be trained on separate goroutines.
type Map struct {
	inputDim int
	weights  *grid.Grid[[]float64]

	inputMetric  metric.Metric
	outputMetric metric.Metric
	nh           neighbourhood.Function
	adapter      Adapter
	excitation   Excitation
	logger       *slog.Logger

	// transient per-call state
	input     []float64 // owned copy of the last input; nil until SetInput
	winner    []int     // coordinate of the last winner; nil until classified
	winnerOff int
	dists     []float64 // per-node input distances; only kept with an Excitation
	excite    []float64
	excited   bool
	lastError float64
	epsilon   float64
	nhSize    float64
	nhRange   float64
	steps     int
}

// New builds a map with inputDim-long weight vectors on a grid of shape dims,
// driven by adapter. Weights start uniform in [-s, s] (s = DefaultInitScale
// unless WithInitScale is given).
//
// Errors:
//   - ErrBadInputDimension when inputDim < 1.
//   - ErrBadShape when dims is empty or has a non-positive axis.
//   - ErrNilAdapter when adapter is nil.
//   - ErrDimensionMismatch when a fixed-length metric (WeightedEuclidean)
//     does not match inputDim (input metric) or the grid rank (output
//     metric), or when the adapter is bound to another input dimension.
//
// Complexity: O(nodes × inputDim).
func New(inputDim int, dims []int, adapter Adapter, opts ...Option) (*Map, error) {
	if inputDim < 1 {
		return nil, fmt.Errorf("som.%s(%d): %w", ctxNew, inputDim, ErrBadInputDimension)
	}
	if adapter == nil {
		return nil, fmt.Errorf("som.%s: %w", ctxNew, ErrNilAdapter)
	}
	cfg := gatherOptions(opts...)

	return newMap(inputDim, dims, adapter, cfg)
}

func newMap(inputDim int, dims []int, adapter Adapter, cfg config) (*Map, error) {
	g, err := grid.New[[]float64](dims...)
	if err != nil {
		return nil, wrapGridErr(ctxNew, err)
	}
	if err = checkParts(inputDim, len(dims), adapter, cfg); err != nil {
		return nil, err
	}

	// Offset order keeps initialisation reproducible for a given seed.
	vals := g.Values()
	var i, k int
	for i = range vals {
		w := make([]float64, inputDim)
		for k = range w {
			w[k] = uniformSymmetric(cfg.rng, cfg.initScale)
		}
		vals[i] = w
	}

	m := &Map{
		inputDim:     inputDim,
		weights:      g,
		inputMetric:  cfg.inputMetric,
		outputMetric: cfg.outputMetric,
		nh:           cfg.nh,
		adapter:      adapter,
		excitation:   cfg.excitation,
		logger:       cfg.logger,
		nhRange:      cfg.nhRange,
	}
	if m.excitation != nil {
		m.dists = make([]float64, g.Len())
		m.excite = make([]float64, g.Len())
	}
	m.logger.Debug("som: map created",
		slog.Int("input_dim", inputDim),
		slog.Any("shape", g.Shape()),
		slog.Int("nodes", g.Len()),
		slog.Float64("neighbourhood_range", m.nhRange),
	)

	return m, nil
}

// inputSized is implemented by adapters bound to one input length.
type inputSized interface {
	InputDimension() int
}

// checkParts rejects pluggable parts whose sizes disagree with the map.
func checkParts(inputDim, rank int, adapter Adapter, cfg config) error {
	if err := metric.CheckDim(cfg.inputMetric, inputDim); err != nil {
		return fmt.Errorf("som.%s: input metric: %w: %w", ctxNew, ErrDimensionMismatch, err)
	}
	if err := metric.CheckDim(cfg.outputMetric, rank); err != nil {
		return fmt.Errorf("som.%s: output metric: %w: %w", ctxNew, ErrDimensionMismatch, err)
	}
	if a, ok := adapter.(inputSized); ok && a.InputDimension() != inputDim {
		return fmt.Errorf("som.%s: adapter input dimension %d, want %d: %w",
			ctxNew, a.InputDimension(), inputDim, ErrDimensionMismatch)
	}

	return nil
}

// InputDimension returns the expected input vector length.
func (m *Map) InputDimension() int { return m.inputDim }

// OutputDimensions returns a copy of the grid shape.
func (m *Map) OutputDimensions() []int { return m.weights.Shape() }

// Nodes returns the number of grid nodes.
func (m *Map) Nodes() int { return m.weights.Len() }

// Adapter returns the adaptation rule driving this map.
func (m *Map) Adapter() Adapter { return m.adapter }

// NeighbourhoodRange returns the configured neighbourhood range.
func (m *Map) NeighbourhoodRange() float64 { return m.nhRange }

// SetNeighbourhoodRange updates the neighbourhood range used from the next
// training call on.
// Errors: ErrBadRange for negative, NaN or Inf values.
func (m *Map) SetNeighbourhoodRange(r float64) error {
	if !validRange(r) {
		return fmt.Errorf("som.%s(%v): %w", ctxSetNeighbour, r, ErrBadRange)
	}
	m.nhRange = r

	return nil
}

// Winner returns a copy of the last winner coordinate, or nil before the
// first classification.
func (m *Map) Winner() []int {
	if m.winner == nil {
		return nil
	}

	return append([]int(nil), m.winner...)
}

// LastError returns the quantization error of the last classification.
func (m *Map) LastError() float64 { return m.lastError }

// Epsilon returns the learning rate of the last training call.
func (m *Map) Epsilon() float64 { return m.epsilon }

// NeighbourhoodSize returns the neighbourhood size of the last training call.
func (m *Map) NeighbourhoodSize() float64 { return m.nhSize }

// Steps returns the number of completed training calls.
func (m *Map) Steps() int { return m.steps }

// checkVector validates length and finiteness of an input or weight vector.
func (m *Map) checkVector(method string, v []float64) error {
	if len(v) != m.inputDim {
		return fmt.Errorf("som.%s(len %d, want %d): %w", method, len(v), m.inputDim, ErrDimensionMismatch)
	}
	for k, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("som.%s: component %d=%v: %w", method, k, x, ErrNonFinite)
		}
	}

	return nil
}

// SetInput runs the input stage: validates input, stores a private copy as
// the current input and lets the adapter observe it.
//
// Errors: ErrDimensionMismatch, ErrNonFinite; the map is unchanged.
func (m *Map) SetInput(input []float64) error {
	if err := m.checkVector(ctxSetInput, input); err != nil {
		return err
	}

	return m.setInput(input)
}

// setInput assumes input is already validated.
func (m *Map) setInput(input []float64) error {
	// The current input is replaced, never mutated in place.
	m.input = append([]float64(nil), input...)
	if err := m.adapter.Observe(m.input); err != nil {
		return fmt.Errorf("som.%s: %w", ctxSetInput, err)
	}

	return nil
}

// classify scans every node in offset order and records the first node with
// the smallest input-space distance as the winner. A WinnerBiaser adapter
// shifts each node's score; lastError stays the winner's unbiased distance.
// Complexity: O(nodes × inputDim).
func (m *Map) classify() {
	vals := m.weights.Values()
	biaser, _ := m.adapter.(WinnerBiaser)
	n := len(vals)
	var (
		best             int
		bestScore, bestD float64
		d, score         float64
		i                int
	)
	for i = range vals {
		d = m.inputMetric.Distance(vals[i], m.input)
		score = d
		if biaser != nil {
			score -= biaser.Bias(i, n)
		}
		if i == 0 || score < bestScore {
			best, bestScore, bestD = i, score, d
		}
		if m.dists != nil {
			m.dists[i] = d
		}
	}
	if biaser != nil {
		biaser.Won(best, n)
	}
	if m.excitation != nil {
		m.excitation.Excite(m.dists, m.excite)
		m.excited = true
	}
	c, _ := m.weights.CoordinateView(best) // best is always a valid offset
	m.winner = append(m.winner[:0], c...)
	m.winnerOff = best
	m.lastError = bestD
}

// Excitations returns a copy of the per-node activations of the last
// classification, in offset order. It is nil when no Excitation is
// configured (WithExcitation) or nothing was classified yet.
func (m *Map) Excitations() []float64 {
	if !m.excited {
		return nil
	}

	return append([]float64(nil), m.excite...)
}

// Classify runs the input and classify stages for input and returns the
// winner coordinate. Weights are not modified. The adapter still observes
// the input, so a PLSOM2 diameter estimate can grow from queries.
//
// Errors: ErrDimensionMismatch, ErrNonFinite.
func (m *Map) Classify(input []float64) ([]int, error) {
	if err := m.checkVector(ctxClassify, input); err != nil {
		return nil, err
	}
	if err := m.setInput(input); err != nil {
		return nil, err
	}
	m.classify()

	return m.Winner(), nil
}

// ClassifyCurrent classifies the current input again without re-observing it.
// Errors: ErrNoInput before any input was set.
func (m *Map) ClassifyCurrent() ([]int, error) {
	if m.input == nil {
		return nil, fmt.Errorf("som.%s: %w", ctxClassify, ErrNoInput)
	}
	m.classify()

	return m.Winner(), nil
}

// Train runs one full cycle on input: input stage, classify stage, then the
// adapt stage that pulls every node towards the input.
//
// Errors: ErrDimensionMismatch, ErrNonFinite, ErrBadAdaptation, or an adapter
// error such as ErrUndefinedDiameter. Weights are untouched whenever an error
// is returned. Once the input passed validation it stays the current input,
// was observed by the adapter and was classified, even if adaptation fails.
//
// Complexity: O(nodes × inputDim).
func (m *Map) Train(input []float64) error {
	if err := m.checkVector(ctxTrain, input); err != nil {
		return err
	}
	if err := m.setInput(input); err != nil {
		return err
	}

	return m.trainCurrent()
}

// TrainCurrent repeats the classify and adapt stages on the current input.
// Errors: ErrNoInput before any input was set, or an adapter error.
func (m *Map) TrainCurrent() error {
	if m.input == nil {
		return fmt.Errorf("som.%s: %w", ctxTrain, ErrNoInput)
	}

	return m.trainCurrent()
}

func (m *Map) trainCurrent() error {
	m.classify()

	eps, size, err := m.adapter.Adapt(Step{
		LastError:          m.lastError,
		NeighbourhoodRange: m.nhRange,
		Count:              m.steps + 1,
		Winner:             m.winnerOff,
		Nodes:              m.weights.Len(),
	})
	if err == nil {
		err = checkSignal(eps, size)
	}
	if err != nil {
		m.logger.Debug("som: adapt rejected", slog.Int("step", m.steps+1), slog.Any("err", err))

		return fmt.Errorf("som.%s: %w", ctxTrain, err)
	}
	m.epsilon = eps
	m.nhSize = size
	m.steps++

	if eps != 0 {
		m.updateWeights()
	}
	if m.logger.Enabled(context.Background(), slog.LevelDebug) {
		m.logger.Debug("som: step",
			slog.Int("step", m.steps),
			slog.Any("winner", m.winner),
			slog.Float64("error", m.lastError),
			slog.Float64("epsilon", eps),
			slog.Float64("neighbourhood_size", size),
		)
	}

	return nil
}

// checkSignal enforces epsilon in [0, 1] and a finite size >= 0.
func checkSignal(eps, size float64) error {
	if math.IsNaN(eps) || eps < 0 || eps > 1 {
		return fmt.Errorf("epsilon %v: %w", eps, ErrBadAdaptation)
	}
	if math.IsNaN(size) || math.IsInf(size, 0) || size < 0 {
		return fmt.Errorf("neighbourhood size %v: %w", size, ErrBadAdaptation)
	}

	return nil
}

// updateWeights applies w += epsilon·h(d(c, winner), size)·(x − w) to every node.
func (m *Map) updateWeights() {
	vals := m.weights.Values()
	var (
		scale float64
		i, k  int
	)
	for i = range vals {
		c, _ := m.weights.CoordinateView(i)
		scale = m.epsilon * m.nh.Scaling(m.outputMetric.CoordDistance(c, m.winner), m.nhSize)
		if scale == 0 {
			continue
		}
		w := vals[i]
		for k = range w {
			w[k] += scale * (m.input[k] - w[k])
		}
	}
}

// Weights returns a copy of the weight vector at coord.
// Errors: ErrDimensionMismatch (wrong rank), ErrOutOfRange.
func (m *Map) Weights(coord []int) ([]float64, error) {
	w, err := m.weights.At(coord)
	if err != nil {
		return nil, wrapGridErr(ctxWeights, err)
	}

	return append([]float64(nil), w...), nil
}

// SetWeights replaces the weight vector at coord with a copy of w.
// Errors: ErrDimensionMismatch, ErrOutOfRange, ErrNonFinite.
func (m *Map) SetWeights(coord []int, w []float64) error {
	if err := m.checkVector(ctxSetWeights, w); err != nil {
		return err
	}
	if err := m.weights.Set(coord, append([]float64(nil), w...)); err != nil {
		return wrapGridErr(ctxSetWeights, err)
	}

	return nil
}

// StateVector concatenates every node's weights in offset order, followed by
// the adapter's tail scalars (for PLSOM2 a single always-zero rho).
// Complexity: O(nodes × inputDim).
func (m *Map) StateVector() []float64 {
	tail := m.adapter.StateTail()
	out := make([]float64, 0, m.weights.Len()*m.inputDim+len(tail))
	for _, w := range m.weights.Values() {
		out = append(out, w...)
	}

	return append(out, tail...)
}

// Grid returns the live weight grid for read-only sweeps. Mutating it
// bypasses validation; use SetWeights instead.
func (m *Map) Grid() *grid.Grid[[]float64] { return m.weights }

// Snapshot returns a deep copy of the weight grid, e.g. to measure drift
// with metric.GridDistance between epochs.
func (m *Map) Snapshot() *grid.Grid[[]float64] {
	return m.weights.Clone(func(w []float64) []float64 {
		return append([]float64(nil), w...)
	})
}
