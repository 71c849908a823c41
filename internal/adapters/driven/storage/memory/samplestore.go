package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/topgg-sampler/internal/core/domain"
	"github.com/custodia-labs/topgg-sampler/internal/core/ports/driven"
)

// Ensure SampleStore implements the interface.
var _ driven.SampleStore = (*SampleStore)(nil)

// SampleStore keeps exported samples in memory for testing.
type SampleStore struct {
	mu      sync.RWMutex
	samples []*domain.Sample
}

// NewSampleStore creates a new in-memory sample store.
func NewSampleStore() *SampleStore {
	return &SampleStore{}
}

// Save records the sample.
func (s *SampleStore) Save(ctx context.Context, sample *domain.Sample) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.samples = append(s.samples, sample)
	return nil
}

// Last returns the most recent sample, or nil if none was saved.
func (s *SampleStore) Last() *domain.Sample {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.samples) == 0 {
		return nil
	}
	return s.samples[len(s.samples)-1]
}

// Count returns how many samples were saved.
func (s *SampleStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.samples)
}

// Location describes where samples are written.
func (s *SampleStore) Location() string {
	return ":memory:"
}
