// Package domain defines the core business entities for docsuggest.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: An uploaded document and the title it is suggested by
//   - User: The owner of a set of documents
//   - Snapshot: The full {users, documents} collection an index is built from
//   - IndexStats: Figures describing one build generation of the title index
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
