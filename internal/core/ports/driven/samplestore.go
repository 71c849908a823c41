package driven

import (
	"context"

	"github.com/custodia-labs/topgg-sampler/internal/core/domain"
)

// SampleStore exports a completed sample.
type SampleStore interface {
	// Save writes the sample, replacing any previous export.
	Save(ctx context.Context, sample *domain.Sample) error

	// Location describes where samples are written.
	Location() string
}
