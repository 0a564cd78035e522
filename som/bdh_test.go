// SPDX-License-Identifier: MIT
package som_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erikjber/plsomlib/som"
)

func TestBdh_ExactSteps(t *testing.T) {
	m, err := som.NewBdh(1, []int{2}, 0.2, 1, 1, 0)
	require.NoError(t, err)
	require.NoError(t, m.SetWeights([]int{0}, []float64{-1}))
	require.NoError(t, m.SetWeights([]int{1}, []float64{1}))

	// Node 1 wins after one idle step at error 0.5: 0.2 · 1/(1·0.5).
	require.NoError(t, m.Train([]float64{0.5}))
	assert.Equal(t, []int{1}, m.Winner())
	assert.InDelta(t, 0.4, m.Epsilon(), 1e-12)
	assert.Equal(t, 0.0, m.NeighbourhoodSize())
	w1, err := m.Weights([]int{1})
	require.NoError(t, err)
	assert.InDelta(t, 0.8, w1[0], 1e-12)

	// Node 0 has been idle for two steps: 0.2 · 1/(2·0.5).
	require.NoError(t, m.Train([]float64{-0.5}))
	assert.Equal(t, []int{0}, m.Winner())
	assert.InDelta(t, 0.2, m.Epsilon(), 1e-12)
	assert.Empty(t, m.Adapter().StateTail())
}

func TestBdh_CapAndSize(t *testing.T) {
	b, err := som.NewBdhAdapter(0.5, 1, 1, 3)
	require.NoError(t, err)

	eps, size, err := b.Adapt(som.Step{LastError: 0.25, Nodes: 1})
	require.NoError(t, err)
	assert.Equal(t, som.DefaultBdhMaxEpsilon, eps)
	assert.Equal(t, 3.0, size)

	eps, _, err = b.Adapt(som.Step{LastError: 0, Nodes: 1})
	require.NoError(t, err)
	assert.Equal(t, som.DefaultBdhMaxEpsilon, eps, "zero error saturates")
}

func TestBdh_Validation(t *testing.T) {
	bad := [][4]float64{
		{0, 1, 1, 0},
		{1.5, 1, 1, 0},
		{0.5, -1, 1, 0},
		{0.5, 1, math.NaN(), 0},
		{0.5, 1, 1, -2},
		{0.5, 1, 1, math.Inf(1)},
	}
	for i, p := range bad {
		_, err := som.NewBdhAdapter(p[0], p[1], p[2], p[3])
		assert.ErrorIs(t, err, som.ErrBadSchedule, "case %d", i)
	}
	_, err := som.NewBdh(1, []int{2}, 2, 1, 1, 0)
	assert.ErrorIs(t, err, som.ErrBadSchedule)
}
