package domain

import "strings"

// User owns documents. Every user gets a title index, even with no documents.
type User struct {
	// ID is the unique identifier for the user.
	ID string `json:"id"`

	// FirstName is the user's given name.
	FirstName string `json:"firstName"`

	// LastName is the user's family name.
	LastName string `json:"lastName"`

	// Email is the user's contact address.
	Email string `json:"email,omitempty"`
}

// DisplayName returns "First Last", trimmed when either part is missing.
func (u User) DisplayName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
