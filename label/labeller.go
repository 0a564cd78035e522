// SPDX-License-Identifier: MIT

// Package label attaches labels to the nodes of a trained map.
//
// Labeller[L] stores one optional label per node of a grid shaped like the
// map's output space. CentroidLabeller collects sample vectors per node,
// labels each node with the mean of its samples and answers "which labelled
// node is closest to this vector".
//
// Typical flow: classify each labelled sample with the trained map, add the
// sample at its winner (FromMap does both), then query with Closest.
package label

import "github.com/erikjber/plsomlib/grid"

type slot[L any] struct {
	v  L
	ok bool
}

// Labeller holds at most one label per grid node. Not safe for concurrent use.
type Labeller[L any] struct {
	g *grid.Grid[slot[L]]
}

// New returns an empty labeller over a grid of shape dims.
// Errors: ErrBadShape.
func New[L any](dims ...int) (*Labeller[L], error) {
	g, err := grid.New[slot[L]](dims...)
	if err != nil {
		return nil, wrapGridErr("New", err)
	}

	return &Labeller[L]{g: g}, nil
}

// Shape returns a copy of the grid shape.
func (l *Labeller[L]) Shape() []int { return l.g.Shape() }

// Set labels the node at coord.
// Errors: ErrOutOfRange, ErrDimensionMismatch (wrong rank).
func (l *Labeller[L]) Set(coord []int, v L) error {
	if err := l.g.Set(coord, slot[L]{v: v, ok: true}); err != nil {
		return wrapGridErr("Set", err)
	}

	return nil
}

// Clear removes the label at coord.
func (l *Labeller[L]) Clear(coord []int) error {
	if err := l.g.Set(coord, slot[L]{}); err != nil {
		return wrapGridErr("Clear", err)
	}

	return nil
}

// Get returns the label at coord; ok is false when the node is unlabelled.
func (l *Labeller[L]) Get(coord []int) (v L, ok bool, err error) {
	s, err := l.g.At(coord)
	if err != nil {
		return v, false, wrapGridErr("Get", err)
	}

	return s.v, s.ok, nil
}

// Labelled returns the number of labelled nodes.
func (l *Labeller[L]) Labelled() int {
	n := 0
	for _, s := range l.g.Values() {
		if s.ok {
			n++
		}
	}

	return n
}
