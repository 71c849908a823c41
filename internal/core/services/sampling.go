package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/topgg-sampler/internal/core/domain"
	"github.com/custodia-labs/topgg-sampler/internal/core/ports/driven"
	"github.com/custodia-labs/topgg-sampler/internal/core/ports/driving"
	"github.com/custodia-labs/topgg-sampler/internal/logger"
)

// Ensure SamplingService implements the interface.
var _ driving.SamplingService = (*SamplingService)(nil)

// SelectSample draws min(k, len(pool)) entities uniformly without replacement.
//
// Each draw removes a uniformly chosen element from a working copy, so the
// result is a uniform k-subset in random order. pool is never modified.
// A nil rng uses the process-wide generator.
func SelectSample(pool []domain.Entity, k int, rng driven.RandomSource) []domain.Entity {
	if rng == nil {
		rng = DefaultRandomSource()
	}

	remaining := make([]domain.Entity, len(pool))
	copy(remaining, pool)

	sample := make([]domain.Entity, 0, max(0, min(k, len(pool))))
	for i := 0; i < k && len(remaining) > 0; i++ {
		idx := rng.IntN(len(remaining))
		sample = append(sample, remaining[idx])
		remaining = slices.Delete(remaining, idx, idx+1)
	}

	return sample
}

// SamplingService fetches a candidate pool and samples from it.
type SamplingService struct {
	directory   driven.DirectoryClient
	rng         driven.RandomSource
	sampleStore driven.SampleStore
	now         func() time.Time
	newID       func() string
}

// NewSamplingService creates a new sampling service.
// rng is optional (nil uses the process-wide generator).
func NewSamplingService(directory driven.DirectoryClient, rng driven.RandomSource) *SamplingService {
	return &SamplingService{
		directory: directory,
		rng:       rng,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// SetSampleStore enables exporting each completed sample.
func (s *SamplingService) SetSampleStore(store driven.SampleStore) {
	s.sampleStore = store
}

// Run fetches the pool, draws the sample and optionally exports it.
func (s *SamplingService) Run(
	ctx context.Context, settings domain.SamplingSettings, progress driving.Progress,
) (*domain.Sample, error) {
	if s.directory == nil {
		return nil, fmt.Errorf("directory client %w", domain.ErrNotConfigured)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	runID := s.newID()
	logger.Section("Sampling Run")
	logger.Debug("Run ID: %s", runID)
	logger.Debug("Candidate pool size: %d, sample size: %d", settings.CandidatePoolSize, settings.SampleSize)

	pool, err := s.directory.FetchCandidatePool(ctx, settings.CandidatePoolSize)
	if err != nil {
		logger.Warn("Candidate pool fetch failed: %v", err)
		return nil, fmt.Errorf("fetch candidate pool: %w", err)
	}
	logger.Info("Received %d candidates", len(pool))
	if progress != nil {
		progress.CandidatePoolCreated(settings.CandidatePoolSize)
	}

	rng := s.rng
	if settings.Seed != nil {
		logger.Debug("Using seeded random source: %d", *settings.Seed)
		rng = SeededRandomSource(*settings.Seed)
	}

	entities := SelectSample(pool, settings.SampleSize, rng)
	logger.Info("Selected %d of %d candidates", len(entities), len(pool))
	if progress != nil {
		progress.SampleCreated(settings.SampleSize)
	}

	sample := &domain.Sample{
		RunID:             runID,
		CreatedAt:         s.now(),
		CandidatePoolSize: settings.CandidatePoolSize,
		SampleSize:        settings.SampleSize,
		PoolLength:        len(pool),
		Entities:          entities,
	}

	if s.sampleStore != nil {
		logger.Debug("Exporting sample to %s", s.sampleStore.Location())
		if err := s.sampleStore.Save(ctx, sample); err != nil {
			return nil, fmt.Errorf("export sample: %w", err)
		}
	}

	return sample, nil
}
