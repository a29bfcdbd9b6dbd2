package selector

import "math/rand/v2"

// GlobalSource draws from math/rand/v2's top-level generator, which is safe
// for concurrent use and seeded randomly at process start.
type GlobalSource struct{}

// IntN returns a uniform int in [0, n).
func (GlobalSource) IntN(n int) int { return rand.IntN(n) }
