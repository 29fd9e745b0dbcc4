package mcp

import (
	"github.com/custodia-labs/docsuggest/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Suggest answers title autocomplete queries.
	Suggest driving.SuggestService

	// Users lists document owners.
	Users driving.UserService

	// Documents lists and describes uploaded documents.
	Documents driving.DocumentService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil || p.Suggest == nil {
		return ErrMissingSuggestService
	}
	// Users and Documents only back the resources.
	return nil
}
