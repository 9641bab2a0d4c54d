package ports

// Rand is the randomness source for all probabilistic game rules.
// Injecting it keeps event selection, arrest draws, gambles and
// interview outcomes deterministic under test.
type Rand interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64

	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
}
