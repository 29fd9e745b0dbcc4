package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
)

// DefaultSuggestLimit caps suggestions when the caller sends no limit.
const DefaultSuggestLimit = 10

// SuggestInput is the input schema for the suggest_titles tool.
type SuggestInput struct {
	OwnerID string `json:"owner_id" jsonschema:"the user whose documents are searched"`
	Prefix  string `json:"prefix,omitempty" jsonschema:"title prefix; matching is case-insensitive and empty returns every title"`
	Limit   int    `json:"limit,omitempty" jsonschema:"maximum number of titles to return (default 10)"`
}

// SuggestOutput is the output schema for the suggest_titles tool.
type SuggestOutput struct {
	Suggestions []SuggestionOutput `json:"suggestions"`
	Count       int                `json:"count"`
	Generation  uint64             `json:"generation"`
}

// SuggestionOutput represents a single matching document.
type SuggestionOutput struct {
	DocumentID string   `json:"document_id"`
	Title      string   `json:"title"`
	Author     string   `json:"author,omitempty"`
	Categories []string `json:"categories,omitempty"`
	UploadDate string   `json:"upload_date,omitempty"`
}

// StatsInput is the (empty) input schema for the index_stats tool.
type StatsInput struct{}

// StatsOutput is the output schema for the index_stats tool.
type StatsOutput struct {
	Generation  uint64 `json:"generation"`
	Owners      int    `json:"owners"`
	Documents   int    `json:"documents"`
	Nodes       int    `json:"nodes"`
	Overwritten int    `json:"overwritten"`
	Skipped     int    `json:"skipped"`
	BuiltAt     string `json:"built_at,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "suggest_titles",
		Description: "Autocomplete document titles for a user from a title prefix",
	}, s.handleSuggest)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "index_stats",
		Description: "Describe the current title index generation",
	}, s.handleStats)
}

// handleSuggest handles the suggest_titles tool invocation.
func (s *Server) handleSuggest(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SuggestInput,
) (*mcp.CallToolResult, SuggestOutput, error) {
	if input.OwnerID == "" {
		return nil, SuggestOutput{}, fmt.Errorf("owner_id is required: %w", domain.ErrInvalidInput)
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}

	res, err := s.ports.Suggest.Suggest(ctx, input.OwnerID, input.Prefix, domain.SuggestOptions{Limit: limit})
	if err != nil {
		if errors.Is(err, domain.ErrOwnerNotFound) {
			return nil, SuggestOutput{}, fmt.Errorf("user %q not found: %w", input.OwnerID, err)
		}
		return nil, SuggestOutput{}, err
	}

	output := SuggestOutput{
		Suggestions: make([]SuggestionOutput, len(res.Documents)),
		Count:       len(res.Documents),
		Generation:  res.Generation,
	}

	for i := range res.Documents {
		doc := &res.Documents[i]
		out := SuggestionOutput{
			DocumentID: doc.ID,
			Title:      doc.Title,
			Author:     doc.Author,
			Categories: doc.Categories,
		}
		if !doc.UploadDate.IsZero() {
			out.UploadDate = doc.UploadDate.Format(time.RFC3339)
		}
		output.Suggestions[i] = out
	}

	return nil, output, nil
}

// handleStats handles the index_stats tool invocation.
func (s *Server) handleStats(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ StatsInput,
) (*mcp.CallToolResult, StatsOutput, error) {
	st := s.ports.Suggest.Stats()
	out := StatsOutput{
		Generation:  st.Generation,
		Owners:      st.Owners,
		Documents:   st.Documents,
		Nodes:       st.Nodes,
		Overwritten: st.Overwritten,
		Skipped:     st.Skipped,
	}
	if !st.BuiltAt.IsZero() {
		out.BuiltAt = st.BuiltAt.Format(time.RFC3339)
	}
	return nil, out, nil
}
