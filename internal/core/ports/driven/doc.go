// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentStore: Document persistence
//   - UserStore: User persistence
//   - ConfigStore: Application configuration
//   - SeedFile: Reads and writes the db.json seed file
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - BlobStore: Keeps uploaded file bodies. Without it only metadata is stored.
//   - IndexMetrics: Records build and query figures. Without it nothing is recorded.
//   - RebuildTrigger: Schedules an index rebuild after a store change.
//     Without it the index stays stale until rebuilt explicitly.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
