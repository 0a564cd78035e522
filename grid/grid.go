// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt         = "At"
	ctxSet        = "Set"
	ctxOffset     = "Offset"
	ctxCoordinate = "Coordinate"
	ctxAtOffset   = "AtOffset"
	ctxSetOffset  = "SetOffset"
)

// gridErrorf wraps a sentinel with method context and the offending coordinate.
// Format: "Grid.<method>([c0 c1 ...]): <sentinel>".
// Complexity: O(rank) for formatting.
func gridErrorf(method string, coord []int, err error) error {
	return fmt.Errorf("Grid.%s(%v): %w", method, coord, err)
}

// offsetErrorf wraps a sentinel with method context and a linear offset.
func offsetErrorf(method string, offset int, err error) error {
	return fmt.Errorf("Grid.%s(%d): %w", method, offset, err)
}

// Grid is a dense N-dimensional array of V.
//   - dims holds the per-axis sizes (rank == len(dims) >= 1).
//   - factors holds the per-axis strides (factors[0] == 1).
//   - data is the flat backing store in offset order (len == product(dims)).
//   - coords caches offset → coordinate; nil entries are not computed yet.
type Grid[V any] struct {
	dims    []int
	factors []int
	data    []V
	coords  [][]int
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Grid[int])(nil)

// New allocates a grid of the given shape with every cell set to the zero
// value of V. The caller initialises cells.
//
// Implementation:
//   - Stage 1: validate rank >= 1, every axis > 0 and a cell count that fits
//     in int; else ErrBadShape.
//   - Stage 2: derive strides (factors[0]=1, factors[i]=factors[i-1]*dims[i-1]).
//   - Stage 3: allocate the flat store and an empty coordinate cache.
//
// The dims slice is copied; later changes by the caller do not affect the grid.
//
// Complexity: Time O(rank + count), Space O(count).
func New[V any](dims ...int) (*Grid[V], error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("grid.New(%v): %w", dims, ErrBadShape)
	}

	shape := make([]int, len(dims))
	factors := make([]int, len(dims))
	count := 1
	var i int
	for i = 0; i < len(dims); i++ {
		if dims[i] <= 0 {
			return nil, fmt.Errorf("grid.New(%v): axis %d: %w", dims, i, ErrBadShape)
		}
		if count > math.MaxInt/dims[i] {
			return nil, fmt.Errorf("grid.New(%v): cell count overflows int: %w", dims, ErrBadShape)
		}
		shape[i] = dims[i]
		factors[i] = count
		count *= dims[i]
	}

	return &Grid[V]{
		dims:    shape,
		factors: factors,
		data:    make([]V, count),
		coords:  make([][]int, count),
	}, nil
}

// Rank returns the number of axes. Complexity: O(1).
func (g *Grid[V]) Rank() int { return len(g.dims) }

// Len returns the number of cells (product of the shape). Complexity: O(1).
func (g *Grid[V]) Len() int { return len(g.data) }

// Shape returns a copy of the per-axis sizes.
// Complexity: O(rank).
func (g *Grid[V]) Shape() []int {
	out := make([]int, len(g.dims))
	copy(out, g.dims)

	return out
}

// Offset maps a coordinate to its linear offset.
//
// Errors:
//   - ErrDimensionMismatch when len(coord) != Rank().
//   - ErrOutOfRange when any component is negative or >= the axis size.
//
// Complexity: Time O(rank), Space O(1).
func (g *Grid[V]) Offset(coord []int) (int, error) {
	off, err := g.offsetOf(coord)
	if err != nil {
		return 0, gridErrorf(ctxOffset, coord, err)
	}

	return off, nil
}

// offsetOf is the unwrapped bounds check shared by Offset/At/Set.
func (g *Grid[V]) offsetOf(coord []int) (int, error) {
	if len(coord) != len(g.dims) {
		return 0, ErrDimensionMismatch
	}
	off := 0
	var i int
	for i = 0; i < len(coord); i++ {
		if coord[i] < 0 || coord[i] >= g.dims[i] {
			return 0, ErrOutOfRange
		}
		off += coord[i] * g.factors[i]
	}

	return off, nil
}

// Coordinate returns a fresh copy of the coordinate stored at offset.
// It is the inverse of Offset for 0 <= offset < Len().
//
// Errors: ErrOutOfRange for offsets outside [0, Len()).
//
// Complexity: Time O(rank), Space O(rank) for the copy.
func (g *Grid[V]) Coordinate(offset int) ([]int, error) {
	c, err := g.CoordinateView(offset)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(c))
	copy(out, c)

	return out, nil
}

// CoordinateView returns the cached coordinate for offset without copying.
// The returned slice is shared with the grid and MUST NOT be modified.
// Hot loops that sweep every cell use this to avoid per-cell allocation.
//
// Errors: ErrOutOfRange for offsets outside [0, Len()).
//
// Complexity: O(rank) on first call for an offset, O(1) afterwards.
func (g *Grid[V]) CoordinateView(offset int) ([]int, error) {
	if offset < 0 || offset >= len(g.data) {
		return nil, offsetErrorf(ctxCoordinate, offset, ErrOutOfRange)
	}
	if c := g.coords[offset]; c != nil {
		return c, nil
	}

	// Peel strides from the slowest axis down to axis 0.
	c := make([]int, len(g.dims))
	rem := offset
	var i int
	for i = len(g.factors) - 1; i >= 0; i-- {
		c[i] = rem / g.factors[i]
		rem -= c[i] * g.factors[i]
	}
	g.coords[offset] = c

	return c, nil
}

// At returns the value at coord.
// Errors: ErrDimensionMismatch, ErrOutOfRange (wrapped with context).
// Complexity: O(rank).
func (g *Grid[V]) At(coord []int) (V, error) {
	off, err := g.offsetOf(coord)
	if err != nil {
		var zero V

		return zero, gridErrorf(ctxAt, coord, err)
	}

	return g.data[off], nil
}

// Set stores v at coord.
// Errors: ErrDimensionMismatch, ErrOutOfRange (wrapped with context).
// Complexity: O(rank).
func (g *Grid[V]) Set(coord []int, v V) error {
	off, err := g.offsetOf(coord)
	if err != nil {
		return gridErrorf(ctxSet, coord, err)
	}
	g.data[off] = v

	return nil
}

// AtOffset returns the value stored at a linear offset.
// Errors: ErrOutOfRange.
func (g *Grid[V]) AtOffset(offset int) (V, error) {
	if offset < 0 || offset >= len(g.data) {
		var zero V

		return zero, offsetErrorf(ctxAtOffset, offset, ErrOutOfRange)
	}

	return g.data[offset], nil
}

// SetOffset stores v at a linear offset.
// Errors: ErrOutOfRange.
func (g *Grid[V]) SetOffset(offset int, v V) error {
	if offset < 0 || offset >= len(g.data) {
		return offsetErrorf(ctxSetOffset, offset, ErrOutOfRange)
	}
	g.data[offset] = v

	return nil
}

// Values returns the backing store in offset order. The slice is shared:
// writes through it are visible in the grid. Use it for full sweeps.
// Complexity: O(1).
func (g *Grid[V]) Values() []V { return g.data }

// Clone returns a grid of identical shape whose cells are copyFn(v) of this
// grid's cells. A nil copyFn performs a shallow value copy.
// The coordinate cache is shared; it is immutable once filled.
//
// Complexity: Time O(count) plus the cost of copyFn.
func (g *Grid[V]) Clone(copyFn func(V) V) *Grid[V] {
	data := make([]V, len(g.data))
	if copyFn == nil {
		copy(data, g.data)
	} else {
		var i int
		for i = range g.data {
			data[i] = copyFn(g.data[i])
		}
	}
	coords := make([][]int, len(g.coords))
	copy(coords, g.coords)

	return &Grid[V]{
		dims:    g.Shape(),
		factors: append([]int(nil), g.factors...),
		data:    data,
		coords:  coords,
	}
}

// String renders the grid as one "coord: value" line per cell in offset order.
// Intended for debugging small grids.
func (g *Grid[V]) String() string {
	var sb strings.Builder
	var off int
	for off = range g.data {
		c, _ := g.CoordinateView(off)
		fmt.Fprintf(&sb, "%v: %v\n", c, g.data[off])
	}

	return sb.String()
}
