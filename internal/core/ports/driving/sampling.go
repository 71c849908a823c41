package driving

import (
	"context"

	"github.com/custodia-labs/topgg-sampler/internal/core/domain"
)

// Progress receives notifications as a sampling run advances.
// Values are the requested sizes, not the received counts.
type Progress interface {
	// CandidatePoolCreated is called once the pool has been fetched.
	CandidatePoolCreated(poolSize int)

	// SampleCreated is called once the sample has been drawn.
	SampleCreated(sampleSize int)
}

// SamplingService runs the fetch-then-sample pipeline.
type SamplingService interface {
	// Run fetches the candidate pool and draws a sample from it.
	// Any failure aborts the run and is returned unchanged.
	// progress may be nil.
	Run(ctx context.Context, settings domain.SamplingSettings, progress Progress) (*domain.Sample, error)
}
