// SPDX-License-Identifier: MIT

package som

import "math"

// Excitation maps the per-node input distances of one classification onto
// per-node activations. dist and out have one entry per node in offset
// order; out is owned by the map and fully overwritten.
type Excitation interface {
	Excite(dist, out []float64)
}

var (
	_ Excitation = LinearExcitation{}
	_ Excitation = NormalizedExcitation{}
	_ Excitation = SoftmaxExcitation{}
)

// LinearExcitation is 1 − d. It is only bounded to [0, 1] for inputs and
// weights scaled so that distances stay below 1.
type LinearExcitation struct{}

// Excite implements Excitation.
func (LinearExcitation) Excite(dist, out []float64) {
	for i, d := range dist {
		out[i] = 1 - d
	}
}

// NormalizedExcitation rescales distances onto [0, 1]: the winner gets 1,
// the farthest node 0. When every node is equally far all get 1.
type NormalizedExcitation struct{}

// Excite implements Excitation.
func (NormalizedExcitation) Excite(dist, out []float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, d := range dist {
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	span := hi - lo
	for i, d := range dist {
		if span <= 0 {
			out[i] = 1

			continue
		}
		out[i] = 1 - (d-lo)/span
	}
}

// SoftmaxExcitation is the softmax of −ln d, i.e. inverse distances
// normalised to sum to 1. Nodes at distance 0 share the whole mass.
type SoftmaxExcitation struct{}

// Excite implements Excitation.
func (SoftmaxExcitation) Excite(dist, out []float64) {
	var (
		sum   float64
		zeros int
	)
	for _, d := range dist {
		if d == 0 {
			zeros++
		}
	}
	if zeros > 0 {
		share := 1 / float64(zeros)
		for i, d := range dist {
			out[i] = 0
			if d == 0 {
				out[i] = share
			}
		}

		return
	}
	for i, d := range dist {
		out[i] = 1 / d
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
}
