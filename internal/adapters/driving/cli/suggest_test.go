package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
)

func seedReports(t *testing.T) *testEnv {
	t.Helper()
	env := setupTestServices(t)
	env.addUser(t, "u1", "Ada", "Lovelace")
	env.addDocument(t, domain.Document{ID: "d1", OwnerID: "u1", Title: "Annual Report"})
	env.addDocument(t, domain.Document{ID: "d2", OwnerID: "u1", Title: "Annual Budget"})
	env.addDocument(t, domain.Document{ID: "d3", OwnerID: "u1", Title: "Monthly Report"})
	return env
}

func TestSuggestCmd_Args(t *testing.T) {
	assert.Error(t, suggestCmd.Args(suggestCmd, nil))
	assert.NoError(t, suggestCmd.Args(suggestCmd, []string{"u1"}))
	assert.NoError(t, suggestCmd.Args(suggestCmd, []string{"u1", "ann"}))
	assert.Error(t, suggestCmd.Args(suggestCmd, []string{"u1", "ann", "extra"}))
}

func TestSuggestCmd_PrefixMatches(t *testing.T) {
	seedReports(t)

	out, err := executeCommand("suggest", "u1", "annual")

	require.NoError(t, err)
	assert.Contains(t, out, "d1\tAnnual Report")
	assert.Contains(t, out, "d2\tAnnual Budget")
	assert.NotContains(t, out, "Monthly Report")
}

func TestSuggestCmd_NormalisesPrefix(t *testing.T) {
	seedReports(t)

	out, err := executeCommand("suggest", "u1", "  MONTHLY R")

	require.NoError(t, err)
	assert.Contains(t, out, "Monthly Report")
	assert.NotContains(t, out, "Annual")
}

func TestSuggestCmd_NoPrefixListsAll(t *testing.T) {
	seedReports(t)

	out, err := executeCommand("suggest", "u1")

	require.NoError(t, err)
	assert.Contains(t, out, "Annual Report")
	assert.Contains(t, out, "Annual Budget")
	assert.Contains(t, out, "Monthly Report")
}

func TestSuggestCmd_NoMatches(t *testing.T) {
	seedReports(t)

	out, err := executeCommand("suggest", "u1", "xyz")

	require.NoError(t, err)
	assert.Contains(t, out, `No titles start with "xyz"`)
}

func TestSuggestCmd_UnknownOwner(t *testing.T) {
	seedReports(t)

	_, err := executeCommand("suggest", "nobody", "annual")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOwnerNotFound)
	assert.Contains(t, err.Error(), "user nobody not found")
}

func TestSuggestCmd_Limit(t *testing.T) {
	seedReports(t)

	out, err := executeCommand("suggest", "u1", "annual", "--limit", "1")

	require.NoError(t, err)
	// Ascending rune order puts "annual budget" first.
	assert.Contains(t, out, "Annual Budget")
	assert.NotContains(t, out, "Annual Report")
}

func TestSuggestCmd_JSON(t *testing.T) {
	seedReports(t)

	out, err := executeCommand("suggest", "u1", "annual", "--json")
	require.NoError(t, err)

	var docs []domain.Document
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 2)
	assert.Equal(t, "d2", docs[0].ID)
	assert.Equal(t, "d1", docs[1].ID)
	assert.Equal(t, "u1", docs[0].OwnerID)
}

func TestSuggestCmd_WithoutServices(t *testing.T) {
	SetServices(nil)

	_, err := executeCommand("suggest", "u1")

	assert.ErrorIs(t, err, errNotConfigured)
}
