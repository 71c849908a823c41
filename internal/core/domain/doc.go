// Package domain defines the core entities for the top.gg sampler.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Entity: One directory listing, kept as an opaque JSON object
//   - PoolQuery: The listing parameters sent to the directory
//   - Sample: The outcome of a single sampling run
//   - SamplingSettings: Pool size, sample size and optional seed
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
