package httpapi

import (
	"time"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
)

// MessageResponse is the body of errors and simple acknowledgements.
type MessageResponse struct {
	Message string `json:"message"`
}

// DuplicateResponse is returned when an upload matches stored content.
type DuplicateResponse struct {
	Message          string           `json:"message"`
	ExistingDocument ExistingDocument `json:"existing_document"`
}

// ExistingDocument summarises the document that already holds the content.
type ExistingDocument struct {
	Title      string    `json:"title"`
	UploadDate time.Time `json:"uploadDate"`
	Categories []string  `json:"categories"`
}

// UploadResponse acknowledges a stored upload.
type UploadResponse struct {
	Message  string          `json:"message"`
	Hash     string          `json:"hash"`
	Document domain.Document `json:"document"`
}

// CategoriesRequest registers shared categories.
type CategoriesRequest struct {
	Categories []string `json:"categories"`
}

// CategoriesResponse carries the shared category list.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// HealthResponse reports liveness and the serving generation.
type HealthResponse struct {
	Status     string `json:"status"`
	Generation uint64 `json:"generation"`
}

// Response messages.
const (
	MsgUserNotFound     = "User not found"
	MsgDocumentNotFound = "Document not found"
	MsgUploaded         = "File successfully uploaded"
	MsgNoFile           = "No file part in the request"
	MsgNoSelectedFile   = "No selected file"
	MsgTitleRequired    = "Title is required"
	MsgCategoriesNeeded = "Categories are required"
	MsgDuplicate        = "A file with the same content already exists"
)
