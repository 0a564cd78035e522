// SPDX-License-Identifier: MIT

package som

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0 or configure no RNG at all,
// so an unconfigured map is reproducible.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// uniformSymmetric returns a value in [-scale, scale).
func uniformSymmetric(r *rand.Rand, scale float64) float64 {
	return scale * (r.Float64()*2 - 1)
}
