// SPDX-License-Identifier: MIT

// Package grid provides a fixed-shape, N-dimensional dense container
// addressed by integer coordinate vectors.
//
// Layout:
//
//	A grid of shape [d0, d1, ..., dk] keeps all cells in one flat slice.
//	Each axis i has a stride factors[i], with factors[0] = 1 and
//	factors[i] = factors[i-1] * d(i-1), so the first axis varies fastest:
//
//	  offset(c) = Σ c[i] * factors[i]
//
//	Shape [3, 2] lays out as
//
//	  offset: 0     1     2     3     4     5
//	  coord:  [0,0] [1,0] [2,0] [0,1] [1,1] [2,1]
//
// Guarantees:
//   - Shape is immutable after New; there is no resize.
//   - At/Set/Offset/Coordinate return sentinel errors instead of panicking.
//   - Coordinate(offset) is cached per offset; repeated sweeps over the grid
//     do not reallocate coordinates.
//   - Values() exposes the backing slice in offset order for bulk sweeps.
//
// Concurrency:
//
//	A Grid is not safe for concurrent mutation. The coordinate cache is
//	filled lazily, so even concurrent readers must synchronise externally.
//
// Complexity:
//   - New: O(count) allocation; At/Set/Offset: O(rank); Coordinate: O(rank)
//     on first call for an offset, O(rank) copy afterwards.
package grid
