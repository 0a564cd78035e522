// SPDX-License-Identifier: MIT
package som_test

import (
	"bytes"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erikjber/plsomlib/metric"
	"github.com/erikjber/plsomlib/som"
)

// mustPLSOM2 builds a PLSOM2 map or fails the test.
func mustPLSOM2(t *testing.T, inputDim int, dims []int, opts ...som.Option) *som.Map {
	t.Helper()
	m, err := som.NewPLSOM2(inputDim, dims, opts...)
	require.NoError(t, err)

	return m
}

// TestNew_Validation covers constructor errors.
func TestNew_Validation(t *testing.T) {
	_, err := som.NewPLSOM2(0, []int{2})
	assert.ErrorIs(t, err, som.ErrBadInputDimension)

	_, err = som.NewPLSOM2(2, nil)
	assert.ErrorIs(t, err, som.ErrBadShape)

	_, err = som.NewPLSOM2(2, []int{3, 0})
	assert.ErrorIs(t, err, som.ErrBadShape)

	_, err = som.New(2, []int{2}, nil)
	assert.ErrorIs(t, err, som.ErrNilAdapter)
}

// TestNew_InitialWeights verifies shape accessors and the [-0.1, 0.1] init range.
func TestNew_InitialWeights(t *testing.T) {
	m := mustPLSOM2(t, 3, []int{4, 5}, som.WithSeed(3))
	assert.Equal(t, 3, m.InputDimension())
	assert.Equal(t, []int{4, 5}, m.OutputDimensions())
	assert.Equal(t, 20, m.Nodes())

	sv := m.StateVector()
	require.Len(t, sv, 20*3+1)
	for _, x := range sv[:60] {
		assert.GreaterOrEqual(t, x, -som.DefaultInitScale)
		assert.LessOrEqual(t, x, som.DefaultInitScale)
	}
	assert.Equal(t, 0.0, sv[60], "reserved rho slot is zero")
}

// TestNew_SeedReproducible checks that equal seeds give equal maps.
func TestNew_SeedReproducible(t *testing.T) {
	a := mustPLSOM2(t, 2, []int{3, 3}, som.WithSeed(11))
	b := mustPLSOM2(t, 2, []int{3, 3}, som.WithRand(rand.New(rand.NewSource(11))))
	c := mustPLSOM2(t, 2, []int{3, 3}, som.WithSeed(12))
	assert.Equal(t, a.StateVector(), b.StateVector())
	assert.NotEqual(t, a.StateVector(), c.StateVector())
}

// TestOptions_PanicOnNonsense follows the option-constructor contract.
func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { som.WithRand(nil) })
	assert.Panics(t, func() { som.WithInputMetric(nil) })
	assert.Panics(t, func() { som.WithOutputMetric(nil) })
	assert.Panics(t, func() { som.WithNeighbourhood(nil) })
	assert.Panics(t, func() { som.WithLogger(nil) })
	assert.Panics(t, func() { som.WithInitScale(0) })
	assert.Panics(t, func() { som.WithInitScale(math.Inf(1)) })
	assert.Panics(t, func() { som.WithNeighbourhoodRange(-1) })
	assert.Panics(t, func() { som.WithNeighbourhoodRange(math.NaN()) })
}

// TestClassify_Scenario presets two 1-D nodes and checks the nearest wins.
func TestClassify_Scenario(t *testing.T) {
	m := mustPLSOM2(t, 1, []int{2})
	require.NoError(t, m.SetWeights([]int{0}, []float64{-1}))
	require.NoError(t, m.SetWeights([]int{1}, []float64{1}))

	w, err := m.Classify([]float64{0.9})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, w)
	assert.InDelta(t, 0.1, m.LastError(), 1e-12)

	w, err = m.Classify([]float64{-0.9})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, w)
	assert.Equal(t, []int{0}, m.Winner())
}

// TestClassify_TieBreaksOnFirstOffset pins first-in-offset-order tie-breaking.
func TestClassify_TieBreaksOnFirstOffset(t *testing.T) {
	m := mustPLSOM2(t, 1, []int{3})
	for i := 0; i < 3; i++ {
		require.NoError(t, m.SetWeights([]int{i}, []float64{1}))
	}
	w, err := m.Classify([]float64{1})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, w)
	assert.Equal(t, 0.0, m.LastError())
}

// TestClassify_DeterministicAndReadOnly repeats a query on a fixed map.
func TestClassify_DeterministicAndReadOnly(t *testing.T) {
	m := mustPLSOM2(t, 2, []int{6, 4}, som.WithSeed(5), som.WithNeighbourhoodRange(3))
	r := rand.New(rand.NewSource(9))
	for i := 0; i < 200; i++ {
		require.NoError(t, m.Train([]float64{r.Float64(), r.Float64()}))
	}

	before := m.StateVector()
	first, err := m.Classify([]float64{0.3, 0.7})
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := m.Classify([]float64{0.3, 0.7})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, before, m.StateVector(), "classify never touches weights")

	cur, err := m.ClassifyCurrent()
	require.NoError(t, err)
	assert.Equal(t, first, cur)
}

// TestWinner_IsACopy guards the engine's winner state against caller writes.
func TestWinner_IsACopy(t *testing.T) {
	m := mustPLSOM2(t, 1, []int{2})
	assert.Nil(t, m.Winner(), "no winner before classification")
	w, err := m.Classify([]float64{0})
	require.NoError(t, err)
	w[0] = 99
	assert.NotEqual(t, 99, m.Winner()[0])
}

// TestValidation_LeavesWeightsUnchanged covers every rejecting path of Train.
func TestValidation_LeavesWeightsUnchanged(t *testing.T) {
	m := mustPLSOM2(t, 2, []int{3, 3}, som.WithNeighbourhoodRange(2))
	before := m.StateVector()

	err := m.Train([]float64{1})
	assert.ErrorIs(t, err, som.ErrDimensionMismatch)
	err = m.Train([]float64{1, math.NaN()})
	assert.ErrorIs(t, err, som.ErrNonFinite)
	err = m.Train([]float64{math.Inf(-1), 0})
	assert.ErrorIs(t, err, som.ErrNonFinite)
	_, err = m.Classify([]float64{1, 2, 3})
	assert.ErrorIs(t, err, som.ErrDimensionMismatch)

	assert.Equal(t, before, m.StateVector())
	assert.Equal(t, 0, m.Steps())
	assert.Nil(t, m.Winner())
}

// TestCurrent_NoInput requires an input before the *Current variants.
func TestCurrent_NoInput(t *testing.T) {
	m := mustPLSOM2(t, 2, []int{2})
	_, err := m.ClassifyCurrent()
	assert.ErrorIs(t, err, som.ErrNoInput)
	assert.ErrorIs(t, m.TrainCurrent(), som.ErrNoInput)

	require.NoError(t, m.SetInput([]float64{0.5, 0.5}))
	_, err = m.ClassifyCurrent()
	assert.NoError(t, err)
	assert.NoError(t, m.TrainCurrent())
	assert.Equal(t, 1, m.Steps())
}

// TestSetInput_CopiesCallerSlice verifies the engine owns its input.
func TestSetInput_CopiesCallerSlice(t *testing.T) {
	m := mustPLSOM2(t, 1, []int{2})
	require.NoError(t, m.SetWeights([]int{0}, []float64{-1}))
	require.NoError(t, m.SetWeights([]int{1}, []float64{1}))

	in := []float64{0.9}
	require.NoError(t, m.SetInput(in))
	in[0] = -0.9
	w, err := m.ClassifyCurrent()
	require.NoError(t, err)
	assert.Equal(t, []int{1}, w, "mutating the caller slice must not change the stored input")
}

// TestWeights_AccessAndErrors covers Weights/SetWeights bounds and copies.
func TestWeights_AccessAndErrors(t *testing.T) {
	m := mustPLSOM2(t, 2, []int{2, 3})

	require.NoError(t, m.SetWeights([]int{1, 2}, []float64{4, 5}))
	w, err := m.Weights([]int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5}, w)
	w[0] = 100
	again, err := m.Weights([]int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5}, again, "Weights returns a copy")

	_, err = m.Weights([]int{2, 0})
	assert.ErrorIs(t, err, som.ErrOutOfRange)
	_, err = m.Weights([]int{0, -1})
	assert.ErrorIs(t, err, som.ErrOutOfRange)
	_, err = m.Weights([]int{0})
	assert.ErrorIs(t, err, som.ErrDimensionMismatch)

	assert.ErrorIs(t, m.SetWeights([]int{0, 0}, []float64{1}), som.ErrDimensionMismatch)
	assert.ErrorIs(t, m.SetWeights([]int{0, 3}, []float64{1, 1}), som.ErrOutOfRange)
	assert.ErrorIs(t, m.SetWeights([]int{0, 0}, []float64{1, math.NaN()}), som.ErrNonFinite)
}

// TestSetNeighbourhoodRange validates the only runtime hyperparameter.
func TestSetNeighbourhoodRange(t *testing.T) {
	m := mustPLSOM2(t, 2, []int{2})
	assert.Equal(t, som.DefaultNeighbourhoodRange, m.NeighbourhoodRange())
	require.NoError(t, m.SetNeighbourhoodRange(20))
	assert.Equal(t, 20.0, m.NeighbourhoodRange())

	assert.ErrorIs(t, m.SetNeighbourhoodRange(-1), som.ErrBadRange)
	assert.ErrorIs(t, m.SetNeighbourhoodRange(math.Inf(1)), som.ErrBadRange)
	assert.Equal(t, 20.0, m.NeighbourhoodRange(), "rejected value is not stored")
}

// TestSnapshot_Drift measures movement between two snapshots.
func TestSnapshot_Drift(t *testing.T) {
	m := mustPLSOM2(t, 2, []int{4, 4}, som.WithNeighbourhoodRange(4))
	before := m.Snapshot()

	require.NoError(t, m.Train([]float64{0, 0}))
	require.NoError(t, m.Train([]float64{1, 1}))

	after := m.Snapshot()
	d, err := metric.GridDistance(before, after)
	require.NoError(t, err)
	assert.Greater(t, d, 0.0)

	// Snapshots are independent of the live map.
	after.Values()[0][0] = 1e9
	w, err := m.Weights([]int{0, 0})
	require.NoError(t, err)
	assert.NotEqual(t, 1e9, w[0])
}

// TestLogger_DebugEvents checks that the configured logger receives records.
func TestLogger_DebugEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := mustPLSOM2(t, 2, []int{2, 2}, som.WithLogger(logger), som.WithNeighbourhoodRange(1))
	require.NoError(t, m.Train([]float64{0, 0}))
	require.NoError(t, m.Train([]float64{1, 1}))

	out := buf.String()
	assert.True(t, strings.Contains(out, "som: map created"), "construction is logged")
	assert.True(t, strings.Contains(out, "som: diameter grew"), "diameter growth is logged")
	assert.True(t, strings.Contains(out, "som: step"), "training steps are logged")
}

// TestCustomMetrics wires alternative input/output metrics through options.
func TestCustomMetrics(t *testing.T) {
	m := mustPLSOM2(t, 2, []int{2},
		som.WithInputMetric(metric.SquaredEuclidean{}),
		som.WithOutputMetric(metric.SquaredEuclidean{}),
	)
	require.NoError(t, m.SetWeights([]int{0}, []float64{0, 0}))
	require.NoError(t, m.SetWeights([]int{1}, []float64{3, 4}))
	_, err := m.Classify([]float64{3, 4.5})
	require.NoError(t, err)
	assert.InDelta(t, 0.25, m.LastError(), 1e-12, "error is measured in the input metric")
}
