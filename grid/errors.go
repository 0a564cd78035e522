// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// All public methods return these sentinels (possibly wrapped with method
// context via %w); tests match them with errors.Is. No method panics on
// user-triggered conditions.

package grid

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (rank 0, or any axis size <= 0).
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrDimensionMismatch indicates a coordinate whose length differs from
	// the grid rank.
	ErrDimensionMismatch = errors.New("grid: coordinate rank mismatch")

	// ErrOutOfRange indicates a coordinate component (or a linear offset)
	// outside valid bounds.
	ErrOutOfRange = errors.New("grid: index out of range")
)
