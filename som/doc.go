// SPDX-License-Identifier: MIT

// Package som implements self-organizing maps over an N-dimensional grid of
// weight vectors, with the parameterless PLSOM2 rule as the primary variant.
//
// 🚀 One training call:
//
//  1. Input: the vector is validated and copied, then the adapter observes
//     it (PLSOM2 updates its input-diameter estimate here).
//  2. Classify: every node is scanned in offset order. The first node with
//     the smallest input-space distance wins and that distance is the error.
//  3. Adapt: the adapter derives epsilon and a neighbourhood size, and every
//     node c is pulled towards the input.
//
// The update of node c with weights w for input x:
//
//	w += epsilon · h(d(c, winner), size) · (x − w)
//
// ✨ Adaptation rules (Adapter):
//   - PLSOM2: epsilon = min(error / diameter, 1), no schedule to tune.
//   - PLSOM: epsilon = error / largest error seen.
//   - Classic: epsilon and size follow an external decaying Schedule.
//   - Conscience: Classic plus a winner bias against frequent winners.
//   - Bdh: epsilon from the winner's idle time and error.
//
// Adapters may also implement WinnerBiaser to shift the winner search, and
// any map can expose per-node activations through WithExcitation.
//
// Only the neighbourhood range (PLSOM, PLSOM2) and the grid shape are tunable.
//
// ⚙️ Usage:
//
//	m, err := som.NewPLSOM2(2, []int{10, 10}, som.WithSeed(42), som.WithNeighbourhoodRange(20))
//	for _, x := range samples {
//	  if err := m.Train(x); err != nil { ... }
//	}
//	winner, err := m.Classify([]float64{0.5, 0.5})
//
// Errors are sentinels (ErrDimensionMismatch, ErrOutOfRange,
// ErrUndefinedDiameter, ...) matched with errors.Is. A call that returns an
// error leaves every weight unchanged.
//
// Concurrency: a Map is strictly sequential. Independent maps share no
// mutable state.
//
// Complexity: Train and Classify are O(nodes × inputDim).
package som
