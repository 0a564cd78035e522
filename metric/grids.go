// SPDX-License-Identifier: MIT

package metric

import (
	"fmt"
	"slices"

	"github.com/erikjber/plsomlib/grid"
)

// GridDistance returns the sum, over corresponding nodes, of the squared
// Euclidean distance between the weight vectors of two equally shaped grids.
// It measures how far a map moved between two snapshots.
//
// Errors: ErrDimensionMismatch when shapes differ or a node pair has weight
// vectors of different length.
//
// Complexity: O(nodes × dim).
func GridDistance(a, b *grid.Grid[[]float64]) (float64, error) {
	if !slices.Equal(a.Shape(), b.Shape()) {
		return 0, fmt.Errorf("metric.GridDistance(%v, %v): %w", a.Shape(), b.Shape(), ErrDimensionMismatch)
	}
	va, vb := a.Values(), b.Values()
	var (
		sum float64
		i   int
	)
	for i = range va {
		if len(va[i]) != len(vb[i]) {
			return 0, fmt.Errorf("metric.GridDistance: node %d: %w", i, ErrDimensionMismatch)
		}
		sum += squaredSum(va[i], vb[i])
	}

	return sum, nil
}
