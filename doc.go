// Package plsomlib is an in-memory library of parameterless self-organizing
// maps (PLSOM2) over N-dimensional node grids.
//
// 🚀 What is in the box?
//
//	• Dense N-D grids with a fixed offset layout and cached coordinates
//	• Distance metrics: Euclidean, squared Euclidean, weighted Euclidean
//	• A Gaussian neighbourhood function
//	• An online input-diameter estimator with bounded memory
//	• Map engines: PLSOM2 (no learning schedule), PLSOM, classic SOM
//	• Node labelling by sample centroids
//
// ✨ Why PLSOM2?
//
//   - No learning-rate or neighbourhood schedule to tune
//   - Adapts to the scale of the input as it is observed
//   - Deterministic: seeded initial weights, first-minimum tie-breaking
//   - Pure Go, no cgo
//
// Subpackages:
//
//	grid/          dense N-D storage, offset ⇄ coordinate mapping
//	metric/        distances in input space and on grid coordinates
//	neighbourhood/ falloff of the update around the winning node
//	diameter/      running estimate of the input-space diameter
//	som/           the map engine and its adaptation rules
//	label/         per-node labels and centroid lookup
//
// Quick start:
//
//	m, _ := som.NewPLSOM2(2, []int{10, 10}, som.WithNeighbourhoodRange(20))
//	for _, x := range samples {
//		_ = m.Train(x)
//	}
//	winner, _ := m.Classify([]float64{0.25, 0.75})
//
//	go get github.com/erikjber/plsomlib
package plsomlib
