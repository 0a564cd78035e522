// SPDX-License-Identifier: MIT

package som

import (
	"fmt"
	"math"
)

// Schedule defaults, matching the classic decaying SOM trainer.
const (
	DefaultLearningDecay      = 0.997
	DefaultNeighbourhoodDecay = 0.998
)

// Schedule is an externally supplied learning schedule for the classic SOM.
// Before every training call both values are multiplied by their decay, and
// the decayed values drive that call.
type Schedule struct {
	LearningRate       float64 // (0, 1]
	NeighbourhoodSize  float64 // >= 0
	LearningDecay      float64 // (0, 1]
	NeighbourhoodDecay float64 // (0, 1]
}

// DefaultSchedule returns a schedule with the given starting values and the
// default decays.
func DefaultSchedule(learningRate, neighbourhoodSize float64) Schedule {
	return Schedule{
		LearningRate:       learningRate,
		NeighbourhoodSize:  neighbourhoodSize,
		LearningDecay:      DefaultLearningDecay,
		NeighbourhoodDecay: DefaultNeighbourhoodDecay,
	}
}

// Validate reports ErrBadSchedule for out-of-range or non-finite fields.
func (s Schedule) Validate() error {
	switch {
	case !inUnitInterval(s.LearningRate):
		return fmt.Errorf("learning rate %v: %w", s.LearningRate, ErrBadSchedule)
	case math.IsNaN(s.NeighbourhoodSize) || math.IsInf(s.NeighbourhoodSize, 0) || s.NeighbourhoodSize < 0:
		return fmt.Errorf("neighbourhood size %v: %w", s.NeighbourhoodSize, ErrBadSchedule)
	case !inUnitInterval(s.LearningDecay):
		return fmt.Errorf("learning decay %v: %w", s.LearningDecay, ErrBadSchedule)
	case !inUnitInterval(s.NeighbourhoodDecay):
		return fmt.Errorf("neighbourhood decay %v: %w", s.NeighbourhoodDecay, ErrBadSchedule)
	}

	return nil
}

func inUnitInterval(x float64) bool { return x > 0 && x <= 1 }

// Classic is the non-adaptive SOM rule: learning rate and neighbourhood
// size follow a Schedule and ignore the quantization error and the map's
// neighbourhood range.
type Classic struct {
	sched Schedule
}

var _ Adapter = (*Classic)(nil)

// NewClassicAdapter validates s and returns a Classic rule.
// Errors: ErrBadSchedule.
func NewClassicAdapter(s Schedule) (*Classic, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("som.NewClassicAdapter: %w", err)
	}

	return &Classic{sched: s}, nil
}

// NewClassic builds a map driven by a classic SOM schedule.
// Errors: those of New, and ErrBadSchedule.
func NewClassic(inputDim int, dims []int, s Schedule, opts ...Option) (*Map, error) {
	c, err := NewClassicAdapter(s)
	if err != nil {
		return nil, err
	}

	return New(inputDim, dims, c, opts...)
}

// Observe implements Adapter; the classic rule needs no input statistics.
func (c *Classic) Observe([]float64) error { return nil }

// Adapt decays the schedule and returns the decayed values.
func (c *Classic) Adapt(Step) (float64, float64, error) {
	c.sched.LearningRate *= c.sched.LearningDecay
	c.sched.NeighbourhoodSize *= c.sched.NeighbourhoodDecay

	return c.sched.LearningRate, c.sched.NeighbourhoodSize, nil
}

// Schedule returns the current (already decayed) schedule.
func (c *Classic) Schedule() Schedule { return c.sched }

// StateTail implements Adapter; the classic rule contributes nothing.
func (c *Classic) StateTail() []float64 { return nil }
