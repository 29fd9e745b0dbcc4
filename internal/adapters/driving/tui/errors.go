package tui

import "errors"

// ErrMissingSuggestService is returned when the suggest service is not provided.
var ErrMissingSuggestService = errors.New("tui: suggest service is required")

// ErrNoOwner is returned when there is neither a user service to pick an
// owner from nor a preset owner.
var ErrNoOwner = errors.New("tui: an owner or a user service is required")
