// Package mcp provides an MCP (Model Context Protocol) server adapter for docsuggest.
// It lets AI assistants query title suggestions and browse users and documents.
package mcp

import "errors"

// ErrMissingSuggestService is returned when the suggest service is not provided.
var ErrMissingSuggestService = errors.New("mcp: suggest service is required")
