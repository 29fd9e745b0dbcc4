package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsuggest/internal/adapters/driven/storage/memory"
)

func TestParseConfigValue(t *testing.T) {
	tests := []struct {
		raw  string
		want any
	}{
		{"true", true},
		{"false", false},
		{"25", int64(25)},
		{"0.5", 0.5},
		{"5m", "5m"},
		{":8080", ":8080"},
		{"1", int64(1)},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parseConfigValue(tt.raw))
		})
	}
}

func TestConfigSetGetList(t *testing.T) {
	env := setupTestServices(t)
	store := memory.NewConfigStore()
	env.services.ConfigStore = store

	out, err := executeCommand("config", "set", "index.max_results", "25")
	require.NoError(t, err)
	assert.Contains(t, out, "index.max_results = 25")
	assert.Equal(t, 25, store.GetInt("index.max_results"))

	_, err = executeCommand("config", "set", "seed.watch", "true")
	require.NoError(t, err)
	assert.True(t, store.GetBool("seed.watch"))

	out, err = executeCommand("config", "get", "index.max_results")
	require.NoError(t, err)
	assert.Equal(t, "25\n", out)

	out, err = executeCommand("config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "# :memory:")
	assert.Contains(t, out, "index.max_results = 25\nseed.watch = true\n")
}

func TestConfigGet_Unset(t *testing.T) {
	env := setupTestServices(t)
	env.services.ConfigStore = memory.NewConfigStore()

	_, err := executeCommand("config", "get", "server.addr")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.addr is not set")
}

func TestConfig_WithoutStore(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand("config", "list")

	assert.ErrorIs(t, err, errNotConfigured)
}
