// SPDX-License-Identifier: MIT

package diameter

import "errors"

var (
	// ErrBadDimension is returned by New when the input dimension is < 1.
	ErrBadDimension = errors.New("diameter: input dimension must be > 0")

	// ErrDimensionMismatch indicates an input whose length differs from the
	// buffer's input dimension.
	ErrDimensionMismatch = errors.New("diameter: input dimension mismatch")
)
