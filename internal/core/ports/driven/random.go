package driven

// RandomSource yields uniformly distributed integers.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	// IntN returns a value in [0, n). Panics if n <= 0.
	IntN(n int) int
}
