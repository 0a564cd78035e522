// SPDX-License-Identifier: MIT

package som

import (
	"fmt"
	"math"
)

// DefaultBdhMaxEpsilon caps the Bdh learning rate.
const DefaultBdhMaxEpsilon = 0.9

// Bdh derives the learning rate from how long the winner went without
// winning and how far it is from the input:
//
//	t       = steps since the winner last won (>= 1)
//	epsilon = min(epsilon0 · (1 / (t · error^d))^m, 0.9)
//
// The neighbourhood size is fixed.
type Bdh struct {
	eps0, d, m float64
	size       float64
	idle       []int
}

var _ Adapter = (*Bdh)(nil)

// NewBdhAdapter validates the parameters: epsilon0 in (0, 1], d and m finite
// and >= 0, size finite and >= 0.
// Errors: ErrBadSchedule.
func NewBdhAdapter(epsilon0, d, m, size float64) (*Bdh, error) {
	nonNeg := func(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0 }
	switch {
	case !inUnitInterval(epsilon0):
		return nil, fmt.Errorf("som.NewBdhAdapter: epsilon0 %v: %w", epsilon0, ErrBadSchedule)
	case !nonNeg(d) || !nonNeg(m):
		return nil, fmt.Errorf("som.NewBdhAdapter: d=%v m=%v: %w", d, m, ErrBadSchedule)
	case !nonNeg(size):
		return nil, fmt.Errorf("som.NewBdhAdapter: size %v: %w", size, ErrBadSchedule)
	}

	return &Bdh{eps0: epsilon0, d: d, m: m, size: size}, nil
}

// NewBdh builds a map driven by a Bdh rule.
// Errors: those of New, and ErrBadSchedule.
func NewBdh(inputDim int, dims []int, epsilon0, d, m, size float64, opts ...Option) (*Map, error) {
	b, err := NewBdhAdapter(epsilon0, d, m, size)
	if err != nil {
		return nil, err
	}

	return New(inputDim, dims, b, opts...)
}

// Observe implements Adapter; Bdh needs no input statistics.
func (b *Bdh) Observe([]float64) error { return nil }

// Adapt implements Adapter.
func (b *Bdh) Adapt(s Step) (float64, float64, error) {
	if len(b.idle) != s.Nodes {
		b.idle = make([]int, s.Nodes)
	}
	for i := range b.idle {
		b.idle[i]++
	}
	t := float64(b.idle[s.Winner])
	b.idle[s.Winner] = 0

	// A zero error gives an infinite ratio, capped below.
	ratio := 1 / (t * math.Pow(s.LastError, b.d))
	eps := math.Min(b.eps0*math.Pow(ratio, b.m), DefaultBdhMaxEpsilon)

	return eps, b.size, nil
}

// StateTail implements Adapter; Bdh contributes nothing.
func (b *Bdh) StateTail() []float64 { return nil }
