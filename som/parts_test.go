// SPDX-License-Identifier: MIT
package som_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erikjber/plsomlib/metric"
	"github.com/erikjber/plsomlib/som"
)

// fixedAdapter returns a constant learning signal and records each Step.
type fixedAdapter struct {
	eps, size float64
	steps     []som.Step
}

func (f *fixedAdapter) Observe([]float64) error { return nil }

func (f *fixedAdapter) Adapt(s som.Step) (float64, float64, error) {
	f.steps = append(f.steps, s)

	return f.eps, f.size, nil
}

func (f *fixedAdapter) StateTail() []float64 { return nil }

// TestNew_RejectsMismatchedMetrics checks fixed-length metrics against the
// input dimension and the grid rank.
func TestNew_RejectsMismatchedMetrics(t *testing.T) {
	w3, err := metric.NewWeightedEuclidean([]float64{1, 1, 1})
	require.NoError(t, err)
	w2, err := metric.NewWeightedEuclidean([]float64{1, 2})
	require.NoError(t, err)

	_, err = som.NewPLSOM2(2, []int{3, 3}, som.WithInputMetric(w3))
	assert.ErrorIs(t, err, som.ErrDimensionMismatch)

	_, err = som.NewPLSOM2(2, []int{3, 3}, som.WithOutputMetric(w3))
	assert.ErrorIs(t, err, som.ErrDimensionMismatch)

	m, err := som.NewPLSOM2(2, []int{3, 3},
		som.WithInputMetric(w2), som.WithOutputMetric(w2), som.WithNeighbourhoodRange(2))
	require.NoError(t, err)
	require.NoError(t, m.Train([]float64{0.1, 0.2}))
	require.NoError(t, m.Train([]float64{0.9, 0.4}))
}

// TestNew_RejectsMismatchedAdapter catches an adapter bound to another input size.
func TestNew_RejectsMismatchedAdapter(t *testing.T) {
	p, err := som.NewPLSOM2Adapter(3)
	require.NoError(t, err)
	assert.Equal(t, 3, p.InputDimension())

	_, err = som.New(2, []int{2}, p)
	assert.ErrorIs(t, err, som.ErrDimensionMismatch)

	m, err := som.New(3, []int{2}, p)
	require.NoError(t, err)
	assert.NoError(t, m.Train([]float64{1, 2, 3}))
}

// TestTrain_RejectsInvalidSignal guards the epsilon and size bounds against
// custom adapters.
func TestTrain_RejectsInvalidSignal(t *testing.T) {
	cases := []struct {
		name      string
		eps, size float64
	}{
		{"negative epsilon", -0.1, 0},
		{"epsilon above one", 1.5, 0},
		{"NaN epsilon", math.NaN(), 0},
		{"negative size", 0.5, -1},
		{"infinite size", 0.5, math.Inf(1)},
		{"NaN size", 0.5, math.NaN()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := som.New(2, []int{2, 2}, &fixedAdapter{eps: tc.eps, size: tc.size})
			require.NoError(t, err)
			before := m.StateVector()

			err = m.Train([]float64{0.5, 0.5})
			assert.ErrorIs(t, err, som.ErrBadAdaptation)
			assert.Equal(t, before, m.StateVector())
			assert.Equal(t, 0, m.Steps())
		})
	}

	m, err := som.New(1, []int{2}, &fixedAdapter{eps: 1, size: 0})
	require.NoError(t, err)
	require.NoError(t, m.Train([]float64{3}))
	w, err := m.Weights(m.Winner())
	require.NoError(t, err)
	assert.InDelta(t, 3.0, w[0], 1e-12)
}

// TestTrain_StepCarriesWinnerOffset checks the Step handed to adapters.
func TestTrain_StepCarriesWinnerOffset(t *testing.T) {
	f := &fixedAdapter{}
	m, err := som.New(1, []int{3, 2}, f)
	require.NoError(t, err)
	require.NoError(t, m.SetWeights([]int{1, 1}, []float64{5}))

	require.NoError(t, m.Train([]float64{5}))
	require.Len(t, f.steps, 1)
	assert.Equal(t, 4, f.steps[0].Winner, "offset of [1 1] is 1 + 1·3")
	assert.Equal(t, 6, f.steps[0].Nodes)
	assert.Equal(t, 1, f.steps[0].Count)
	assert.Equal(t, 0.0, f.steps[0].LastError)
}
