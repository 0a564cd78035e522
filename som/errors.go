// SPDX-License-Identifier: MIT
// Package som: sentinel error set.
// Every public method validates before it mutates: when one of these is
// returned, node weights are exactly as they were before the call.

package som

import (
	"errors"
	"fmt"

	"github.com/erikjber/plsomlib/grid"
)

var (
	// ErrBadInputDimension is returned by constructors when inputDim < 1.
	ErrBadInputDimension = errors.New("som: input dimension must be > 0")

	// ErrDimensionMismatch indicates an input or weight vector whose length
	// differs from the map's input dimension, or a coordinate whose length
	// differs from the grid rank.
	ErrDimensionMismatch = errors.New("som: dimension mismatch")

	// ErrOutOfRange indicates a coordinate component outside its axis.
	// It is the grid sentinel, so errors.Is matches either name.
	ErrOutOfRange = grid.ErrOutOfRange

	// ErrBadShape indicates an empty output shape or a non-positive axis.
	ErrBadShape = grid.ErrBadShape

	// ErrNonFinite indicates a NaN or ±Inf component in an input or weight vector.
	ErrNonFinite = errors.New("som: NaN or Inf component")

	// ErrBadRange indicates a negative, NaN or Inf neighbourhood range.
	ErrBadRange = errors.New("som: neighbourhood range must be finite and >= 0")

	// ErrNilAdapter is returned by New when no adaptation rule is supplied.
	ErrNilAdapter = errors.New("som: nil adapter")

	// ErrNoInput indicates a classify/train on the current input before any
	// input was set.
	ErrNoInput = errors.New("som: no input set")

	// ErrUndefinedDiameter is returned in strict mode when PLSOM2 is asked to
	// adapt before its diameter estimate is positive. Weights are unchanged,
	// but the rejected input remains the current input, the diameter buffer
	// has observed it and Winner/LastError describe its classification.
	ErrUndefinedDiameter = errors.New("som: input diameter not yet defined")

	// ErrBadSchedule indicates an invalid classic SOM schedule or invalid
	// adapter parameters.
	ErrBadSchedule = errors.New("som: invalid learning schedule")

	// ErrBadAdaptation indicates an adapter that returned epsilon outside
	// [0, 1] or a negative, NaN or Inf neighbourhood size.
	ErrBadAdaptation = errors.New("som: adapter returned an invalid learning signal")
)

// wrapGridErr adds method context to a grid error and maps the grid's rank
// mismatch onto ErrDimensionMismatch so callers can match one sentinel.
func wrapGridErr(method string, err error) error {
	if errors.Is(err, grid.ErrDimensionMismatch) {
		return fmt.Errorf("som.%s: %w: %w", method, ErrDimensionMismatch, err)
	}

	return fmt.Errorf("som.%s: %w", method, err)
}
