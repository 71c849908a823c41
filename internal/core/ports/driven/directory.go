package driven

import (
	"context"

	"github.com/custodia-labs/topgg-sampler/internal/core/domain"
)

// DirectoryClient fetches ranked listings from a directory service.
type DirectoryClient interface {
	// FetchCandidatePool returns up to size top-ranked entities in rank order.
	// Performs exactly one request. Failures are returned as *domain.FetchError.
	FetchCandidatePool(ctx context.Context, size int) (domain.CandidatePool, error)
}
