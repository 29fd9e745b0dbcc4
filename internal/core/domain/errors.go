package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrOwnerNotFound indicates the title index has no entry for an owner.
	ErrOwnerNotFound = errors.New("owner not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateContent indicates a document with identical content is already stored.
	ErrDuplicateContent = errors.New("a file with the same content already exists")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")
)

// DuplicateContentError carries the document that already holds the content.
type DuplicateContentError struct {
	Existing Document
}

func (e *DuplicateContentError) Error() string {
	return ErrDuplicateContent.Error() + ": " + e.Existing.Title
}

// Unwrap lets errors.Is match ErrDuplicateContent.
func (e *DuplicateContentError) Unwrap() error {
	return ErrDuplicateContent
}
