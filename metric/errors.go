// SPDX-License-Identifier: MIT

package metric

import "errors"

var (
	// ErrDimensionMismatch indicates vectors (or grids) of different lengths.
	ErrDimensionMismatch = errors.New("metric: dimension mismatch")

	// ErrBadWeights indicates an empty weight vector or a negative/NaN/Inf weight.
	ErrBadWeights = errors.New("metric: invalid axis weights")
)

// panicLengthMismatch is the stable panic message of the unchecked hot path.
// All call sites inside this module validate lengths first; reaching it is a
// programmer error.
const panicLengthMismatch = "metric: vectors of different length"
