// SPDX-License-Identifier: MIT

package som

// PLSOM is the first-generation parameterless rule. Instead of an input
// diameter it normalises by rho, the largest quantization error seen so far:
//
//	epsilon = error / rho; if epsilon > 1 then rho = error, epsilon = 1
//	size    = range · ln(1 + epsilon·(e − 1))
//
// A zero error gives epsilon 0 and leaves rho untouched.
type PLSOM struct {
	rho float64
}

var _ Adapter = (*PLSOM)(nil)

// NewPLSOM builds a map driven by a PLSOM rule.
func NewPLSOM(inputDim int, dims []int, opts ...Option) (*Map, error) {
	return New(inputDim, dims, &PLSOM{}, opts...)
}

// Observe implements Adapter; PLSOM needs no input statistics.
func (p *PLSOM) Observe([]float64) error { return nil }

// Adapt implements Adapter.
func (p *PLSOM) Adapt(s Step) (float64, float64, error) {
	var eps float64
	switch {
	case s.LastError == 0:
		eps = 0
	case p.rho == 0 || s.LastError > p.rho:
		p.rho = s.LastError
		eps = 1
	default:
		eps = s.LastError / p.rho
	}

	return eps, plsomNeighbourhoodSize(s.NeighbourhoodRange, eps), nil
}

// Rho returns the largest quantization error seen so far.
func (p *PLSOM) Rho() float64 { return p.rho }

// StateTail returns [rho].
func (p *PLSOM) StateTail() []float64 { return []float64{p.rho} }
