package domain

import "time"

// Sample is the outcome of one sampling run.
type Sample struct {
	// RunID identifies the run in logs and exports.
	RunID string `json:"run_id"`

	// CreatedAt is when sampling completed.
	CreatedAt time.Time `json:"created_at"`

	// CandidatePoolSize is the requested pool size.
	CandidatePoolSize int `json:"candidate_pool_size"`

	// SampleSize is the requested sample size.
	SampleSize int `json:"sample_size"`

	// PoolLength is how many candidates the directory actually returned.
	PoolLength int `json:"pool_length"`

	// Entities are the selected records in draw order.
	Entities []Entity `json:"entities"`
}
