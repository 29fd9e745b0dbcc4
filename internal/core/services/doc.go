// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// SuggestService owns the title index and rebuilds it from the stores.
// DocumentService and UserService mutate the stores and ask a
// RebuildTrigger (normally the Rebuilder) for a fresh index afterwards.
package services
