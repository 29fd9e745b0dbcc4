// Package sqlite provides a SQLite-based implementation of the document and
// user stores.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. Both stores share a single database
// connection:
//
//   - DocumentStore: uploaded document persistence
//   - UserStore: document owner persistence
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.docsuggest/data/docsuggest.db
//
// # Ordering
//
// Listings return rows in insertion order (rowid). The title index relies on
// this to resolve documents that share a title deterministically.
package sqlite
