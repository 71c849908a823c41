package services

import (
	"math/rand/v2"

	"github.com/custodia-labs/topgg-sampler/internal/core/ports/driven"
)

// pcgStream is the fixed PCG stream selector for seeded sources.
const pcgStream = 0x9e3779b97f4a7c15

// globalSource draws from the process-wide math/rand/v2 generator.
type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// DefaultRandomSource returns the process-wide generator.
func DefaultRandomSource() driven.RandomSource {
	return globalSource{}
}

// SeededRandomSource returns a deterministic PCG source.
// The same seed always yields the same sequence.
func SeededRandomSource(seed uint64) driven.RandomSource {
	return rand.New(rand.NewPCG(seed, pcgStream))
}
