// SPDX-License-Identifier: MIT

package som

// Step is the per-call state an Adapter sees when deriving the learning
// signal. Values are read-only snapshots.
type Step struct {
	// LastError is the input-space distance between the winner's weights and
	// the current input (quantization error).
	LastError float64

	// NeighbourhoodRange is the map's configured upper bound on the
	// neighbourhood size.
	NeighbourhoodRange float64

	// Count is the 1-based index of this training call.
	Count int

	// Winner is the offset of the winning node; Nodes is the node count.
	Winner int
	Nodes  int
}

// Adapter is the pluggable adaptation rule of a Map. The map owns input
// handling, winner search and the weight sweep; the adapter only decides how
// strongly (epsilon) and how widely (size) the sweep pulls nodes.
//
// Call order per training call: Observe, then Adapt. Classify calls Observe
// only. Adapters are owned by one map and are not safe for sharing.
type Adapter interface {
	// Observe is called with every validated input before classification.
	// The slice is owned by the map; copy it to retain it. The observation
	// sticks even when the following Adapt rejects the step.
	Observe(input []float64) error

	// Adapt returns the learning rate and neighbourhood size for this step.
	// A non-nil error aborts the step before any weight is touched. The map
	// rejects epsilon outside [0, 1] and a negative or non-finite size with
	// ErrBadAdaptation.
	Adapt(s Step) (epsilon, size float64, err error)

	// StateTail returns scalars appended to Map.StateVector after the weights.
	StateTail() []float64
}

// WinnerBiaser is an optional Adapter extension that shifts the winner
// search: node offset wins on the smallest distance minus Bias. Won is called
// once per classification, queries included.
type WinnerBiaser interface {
	Bias(offset, nodes int) float64
	Won(offset, nodes int)
}
