// Package domain defines the core business entities for expressdocs.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - KnowledgeItem: The atomic retrievable unit of documentation
//   - Document: One source markdown file after front-matter extraction
//   - SearchResultRef: A transient reference returned by remote search
//   - QueryResponse: The stable output contract for every query
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
