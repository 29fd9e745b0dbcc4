// Package tui provides an interactive title autocomplete for docsuggest.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/docsuggest/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Suggest answers prefix queries and rebuilds the index.
	Suggest driving.SuggestService

	// Users feeds the owner picker. Optional when an owner is preset.
	Users driving.UserService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Suggest == nil {
		return ErrMissingSuggestService
	}
	return nil
}
