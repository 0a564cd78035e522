// SPDX-License-Identifier: MIT

// Package neighbourhood scales a node's update by its grid distance from the
// winning node.
//
// Gaussian is the only falloff law:
//
//	h(d, N) = exp(-d² / N²)
//
// h is 1 at d = 0 and decays towards 0 as d grows. For N = 0 the quotient is
// undefined, so h(0, 0) = 1 and h(d, 0) = 0 for d != 0; no NaN ever leaves
// this package for finite inputs.
package neighbourhood

import "math"

// Function maps an output-space distance and a neighbourhood size to a
// scaling factor in [0, 1].
type Function interface {
	Scaling(distance, size float64) float64
}

var _ Function = Gaussian{}

// Gaussian is the Gaussian falloff exp(-d²/N²). Stateless.
type Gaussian struct{}

// Scaling implements Function.
// Complexity: O(1).
func (Gaussian) Scaling(distance, size float64) float64 {
	sq := size * size
	if sq == 0 {
		if distance == 0 {
			return 1
		}

		return 0
	}

	return math.Exp(-(distance * distance) / sq)
}
