// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/docsuggest/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewUsers is the owner picker.
	ViewUsers ViewType = iota
	// ViewSuggest is the autocomplete box for one owner.
	ViewSuggest
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewUsers:
		return "users"
	case ViewSuggest:
		return "suggest"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// UsersLoaded carries the list of owners from the service.
type UsersLoaded struct {
	Users []domain.User
	Err   error
}

// UserSelected is sent when an owner is picked.
type UserSelected struct {
	User domain.User
}

// SuggestionsLoaded carries the answer to one prefix query.
// Seq orders queries so a slow answer cannot overwrite a newer one.
type SuggestionsLoaded struct {
	Seq    uint64
	Prefix string
	Result domain.SuggestResult
	Err    error
}

// DocumentChosen is sent when a suggestion is confirmed with enter.
type DocumentChosen struct {
	Document domain.Document
}

// RebuildCompleted reports the outcome of a manual rebuild.
type RebuildCompleted struct {
	Stats domain.IndexStats
	Err   error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
