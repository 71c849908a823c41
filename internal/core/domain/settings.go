package domain

import (
	"fmt"
	"time"
)

// Default sampling parameters.
const (
	// DefaultCandidatePoolSize is how many top servers form the pool.
	DefaultCandidatePoolSize = 100

	// DefaultSampleSize is how many servers are drawn from the pool.
	DefaultSampleSize = 5

	// DefaultEndpoint is the top.gg GraphQL endpoint.
	DefaultEndpoint = "https://api.top.gg/graphql"
)

// OutputFormat selects how a sample is printed.
type OutputFormat string

// Available output formats.
const (
	// OutputFormatDump prints the sample as an indented JSON array.
	OutputFormatDump OutputFormat = "dump"

	// OutputFormatJSON prints the sample with run metadata as one JSON object.
	OutputFormatJSON OutputFormat = "json"

	// OutputFormatTable prints a summary table of the sample.
	OutputFormatTable OutputFormat = "table"
)

// IsValid returns true if the format is recognised.
func (f OutputFormat) IsValid() bool {
	switch f {
	case OutputFormatDump, OutputFormatJSON, OutputFormatTable:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (f OutputFormat) String() string {
	return string(f)
}

// SamplingSettings configures one sampling run.
type SamplingSettings struct {
	// CandidatePoolSize is the number of top-ranked entities to fetch.
	CandidatePoolSize int

	// SampleSize is the number of entities to draw.
	SampleSize int

	// Seed makes the draw reproducible when set.
	Seed *uint64
}

// Validate checks the settings can drive a run.
func (s SamplingSettings) Validate() error {
	if s.CandidatePoolSize <= 0 {
		return fmt.Errorf("%w: candidate pool size must be positive, got %d", ErrInvalidInput, s.CandidatePoolSize)
	}
	if s.SampleSize < 0 {
		return fmt.Errorf("%w: sample size must not be negative, got %d", ErrInvalidInput, s.SampleSize)
	}
	return nil
}

// DirectorySettings configures the directory client.
type DirectorySettings struct {
	// Endpoint is the GraphQL URL.
	Endpoint string

	// Timeout bounds the request. Zero means no timeout.
	Timeout time.Duration
}

// OutputSettings configures how results are presented and exported.
type OutputSettings struct {
	// Format selects the stdout rendering.
	Format OutputFormat

	// File is an optional path the sample is exported to.
	File string
}

// AppSettings holds all persisted settings.
type AppSettings struct {
	Sampling  SamplingSettings
	Directory DirectorySettings
	Output    OutputSettings
}

// DefaultAppSettings returns settings matching the tool's out-of-the-box behaviour.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Sampling: SamplingSettings{
			CandidatePoolSize: DefaultCandidatePoolSize,
			SampleSize:        DefaultSampleSize,
		},
		Directory: DirectorySettings{
			Endpoint: DefaultEndpoint,
		},
		Output: OutputSettings{
			Format: OutputFormatDump,
		},
	}
}
