// SPDX-License-Identifier: MIT

// Package metric measures distances between fixed-length numeric vectors.
//
// A Metric is used in two spaces:
//   - input space: []float64 weight/input vectors (Distance);
//   - output space: []int grid coordinates compared as reals (CoordDistance).
//
// Metric methods are the unchecked hot path: they panic when lengths differ,
// because every caller in this module validates lengths before a sweep. Use
// the package-level Distance for a checked call that returns
// ErrDimensionMismatch instead.
//
// Implementations are stateless (WeightedEuclidean holds read-only weights)
// and safe to share between maps and goroutines.
package metric
