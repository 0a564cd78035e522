// SPDX-License-Identifier: MIT

package label

import (
	"errors"
	"fmt"

	"github.com/erikjber/plsomlib/grid"
)

var (
	// ErrDimensionMismatch indicates a sample or query vector whose length
	// differs from the labeller's value dimension, a coordinate whose length
	// differs from the grid rank, or a fixed-length metric of another length.
	ErrDimensionMismatch = errors.New("label: dimension mismatch")

	// ErrNoLabels is returned by Closest when no node carries a sample.
	ErrNoLabels = errors.New("label: no labelled nodes")

	// ErrBadDimension is returned by constructors when the value dimension is < 1.
	ErrBadDimension = errors.New("label: value dimension must be > 0")

	// ErrOutOfRange and ErrBadShape are the grid sentinels.
	ErrOutOfRange = grid.ErrOutOfRange
	ErrBadShape   = grid.ErrBadShape
)

// wrapGridErr adds method context to a grid error and maps the grid's rank
// mismatch onto ErrDimensionMismatch.
func wrapGridErr(method string, err error) error {
	if errors.Is(err, grid.ErrDimensionMismatch) {
		return fmt.Errorf("label.%s: %w: %w", method, ErrDimensionMismatch, err)
	}

	return fmt.Errorf("label.%s: %w", method, err)
}
