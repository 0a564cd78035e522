// SPDX-License-Identifier: MIT

package som

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/erikjber/plsomlib/diameter"
)

// PLSOM2 is the parameterless adaptation rule: the learning rate is the
// quantization error normalised by a running estimate of the input diameter.
//
//	epsilon = 0                              if error == 0
//	epsilon = min(error / diameter, 1)       otherwise
//	size    = range · ln(1 + epsilon·(e − 1))
//
// size grows monotonically from 0 (epsilon=0) to range (epsilon=1).
// While the diameter is undefined (fewer than two distinct inputs seen)
// epsilon is 0, or ErrUndefinedDiameter is returned in strict mode.
type PLSOM2 struct {
	buf    *diameter.Buffer
	strict bool
	logger *slog.Logger
}

var _ Adapter = (*PLSOM2)(nil)

// NewPLSOM2Adapter returns a PLSOM2 rule for inputs of length inputDim.
// Errors: ErrBadInputDimension when inputDim < 1.
func NewPLSOM2Adapter(inputDim int) (*PLSOM2, error) {
	buf, err := diameter.New(inputDim)
	if err != nil {
		return nil, fmt.Errorf("som.NewPLSOM2Adapter(%d): %w: %w", inputDim, ErrBadInputDimension, err)
	}

	return &PLSOM2{buf: buf, logger: discardLogger()}, nil
}

// NewPLSOM2 builds a map driven by a PLSOM2 rule. It honours
// WithStrictDiameter and shares the map's logger with the rule.
func NewPLSOM2(inputDim int, dims []int, opts ...Option) (*Map, error) {
	if inputDim < 1 {
		return nil, fmt.Errorf("som.%s(%d): %w", ctxNew, inputDim, ErrBadInputDimension)
	}
	cfg := gatherOptions(opts...)
	p, err := NewPLSOM2Adapter(inputDim)
	if err != nil {
		return nil, err
	}
	p.strict = cfg.strictDiameter
	p.logger = cfg.logger

	return newMap(inputDim, dims, p, cfg)
}

// Observe feeds the input into the diameter estimate.
// Errors: ErrDimensionMismatch when len(input) differs from the rule's input dimension.
func (p *PLSOM2) Observe(input []float64) error {
	grew, err := p.buf.Update(input)
	if err != nil {
		return fmt.Errorf("som.PLSOM2.Observe: %w: %w", ErrDimensionMismatch, err)
	}
	if grew {
		p.logger.Debug("som: diameter grew",
			slog.Float64("diameter", p.buf.MaxDiameter()),
			slog.Int("buffered", p.buf.Len()),
		)
	}

	return nil
}

// Adapt implements Adapter.
func (p *PLSOM2) Adapt(s Step) (float64, float64, error) {
	eps, err := p.Epsilon(s.LastError)
	if err != nil {
		return 0, 0, err
	}

	return eps, plsomNeighbourhoodSize(s.NeighbourhoodRange, eps), nil
}

// Epsilon returns the learning rate for a given quantization error under the
// current diameter estimate. The result is always in [0, 1].
// Errors: ErrUndefinedDiameter in strict mode while the diameter is not > 0.
func (p *PLSOM2) Epsilon(lastError float64) (float64, error) {
	if lastError == 0 {
		return 0, nil
	}
	if !p.buf.Defined() {
		if p.strict {
			return 0, fmt.Errorf("diameter=%v: %w", p.buf.MaxDiameter(), ErrUndefinedDiameter)
		}

		return 0, nil
	}

	return math.Min(lastError/p.buf.MaxDiameter(), 1), nil
}

// plsomNeighbourhoodSize maps epsilon in [0,1] onto [0, nhRange].
func plsomNeighbourhoodSize(nhRange, eps float64) float64 {
	return nhRange * math.Log(1+eps*(math.E-1))
}

// InputDimension returns the input length this rule accepts.
func (p *PLSOM2) InputDimension() int { return p.buf.Dim() }

// Diameter returns the current input diameter estimate (-1 when undefined).
func (p *PLSOM2) Diameter() float64 { return p.buf.MaxDiameter() }

// Strict reports whether an undefined diameter is an error.
func (p *PLSOM2) Strict() bool { return p.strict }

// SetStrict toggles strict handling of an undefined diameter.
func (p *PLSOM2) SetStrict(strict bool) { p.strict = strict }

// StateTail returns the reserved rho scalar. PLSOM2 never computes rho; the
// slot is kept so state vectors line up with PLSOM maps and is always 0.
func (p *PLSOM2) StateTail() []float64 { return []float64{0} }
