// Package domain defines the core business entities for Stony News.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Article: A structured news card produced from one model response
//   - Citation: A grounding source attached to an article
//   - Category: The closed set of editorial labels
//   - NewsSettings: Completion provider configuration
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
