package domain

import "time"

// Document represents an uploaded document owned by a single user.
// The title index only interprets ID, Title and OwnerID; every other
// field passes through to callers untouched.
type Document struct {
	// ID is the unique identifier for the document.
	ID string `json:"id"`

	// OwnerID links to the User that uploaded the document.
	OwnerID string `json:"userId"`

	// Title is the human-readable title used for autocomplete.
	Title string `json:"title"`

	// HashValue is the hex SHA-256 of the uploaded content.
	HashValue string `json:"hashValue,omitempty"`

	// FileExt is the extension of the uploaded file, including the dot.
	FileExt string `json:"fileExt,omitempty"`

	// Author is the display name of the owner at upload time.
	Author string `json:"author,omitempty"`

	// Categories are free-form labels chosen at upload.
	Categories []string `json:"categories,omitempty"`

	// UploadDate is when the document was uploaded.
	UploadDate time.Time `json:"uploadDate,omitzero"`

	// Metadata contains arbitrary key-value pairs.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// FileName returns the name the content is stored under: the content hash
// followed by the original extension.
func (d Document) FileName() string {
	return d.HashValue + d.FileExt
}
