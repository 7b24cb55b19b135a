package model

// Rand is the explicit random source threaded through generation and
// contract rolls. *rand.Rand from math/rand/v2 satisfies it; tests
// substitute seeded or scripted sources for reproducible outcomes.
type Rand interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntN returns a uniform value in [0, n). Panics if n <= 0.
	IntN(n int) int
}
