// SPDX-License-Identifier: MIT

package som

import "fmt"

// Conscience defaults, as given by DeSieno's conscience mechanism.
const (
	DefaultConscienceRate = 0.0001 // B: tracking rate of the win frequency
	DefaultConscienceGain = 10.0   // C: bias gain
)

// Conscience is the classic SOM rule with a conscience: each node tracks how
// often it wins, and nodes that win more than their fair share 1/N are
// handicapped in the winner search by gain·(1/N − p).
//
// The win frequencies update on every classification, queries included.
type Conscience struct {
	Classic
	rate  float64
	gain  float64
	probs []float64
}

var (
	_ Adapter      = (*Conscience)(nil)
	_ WinnerBiaser = (*Conscience)(nil)
)

// NewConscienceAdapter validates s and returns a conscience rule with the
// default rate and gain.
// Errors: ErrBadSchedule.
func NewConscienceAdapter(s Schedule) (*Conscience, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("som.NewConscienceAdapter: %w", err)
	}

	return &Conscience{
		Classic: Classic{sched: s},
		rate:    DefaultConscienceRate,
		gain:    DefaultConscienceGain,
	}, nil
}

// NewConscience builds a map driven by a conscience rule.
// Errors: those of New, and ErrBadSchedule.
func NewConscience(inputDim int, dims []int, s Schedule, opts ...Option) (*Map, error) {
	c, err := NewConscienceAdapter(s)
	if err != nil {
		return nil, err
	}

	return New(inputDim, dims, c, opts...)
}

// bind sizes the win frequencies to nodes, each starting at 1/nodes.
func (c *Conscience) bind(nodes int) {
	if len(c.probs) == nodes {
		return
	}
	c.probs = make([]float64, nodes)
	for i := range c.probs {
		c.probs[i] = 1 / float64(nodes)
	}
}

// Bias implements WinnerBiaser.
func (c *Conscience) Bias(offset, nodes int) float64 {
	c.bind(nodes)

	return c.gain * (1/float64(nodes) - c.probs[offset])
}

// Won implements WinnerBiaser: p += rate·(y − p), y = 1 for the winner only.
func (c *Conscience) Won(offset, nodes int) {
	c.bind(nodes)
	var y float64
	for i := range c.probs {
		y = 0
		if i == offset {
			y = 1
		}
		c.probs[i] += c.rate * (y - c.probs[i])
	}
}

// WinFrequencies returns a copy of the per-node win frequencies in offset
// order, or nil before the first classification.
func (c *Conscience) WinFrequencies() []float64 {
	if c.probs == nil {
		return nil
	}

	return append([]float64(nil), c.probs...)
}
