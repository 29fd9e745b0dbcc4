package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, ConfigFileName), store.Path())
	assert.Empty(t, store.Keys())
}

func TestNewConfigStore_MkdirAllError(t *testing.T) {
	store, err := NewConfigStore("/dev/null/cannot/create/dirs")

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestNewConfigStore_CorruptedFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte("not toml {{[["), 0600))

	store, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_ReadsNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[storage]
backend = "memory"

[index]
max_results = 25
rebuild_rate = 0.5

[seed]
path = "/srv/db.json"
watch = true
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, ConfigFileName), []byte(content), 0600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "memory", store.GetString("storage.backend"))
	assert.Equal(t, 25, store.GetInt("index.max_results"))
	assert.InDelta(t, 0.5, store.GetFloat("index.rebuild_rate"), 1e-9)
	assert.InDelta(t, 25.0, store.GetFloat("index.max_results"), 1e-9)
	assert.True(t, store.GetBool("seed.watch"))
	assert.Equal(t, "/srv/db.json", store.GetString("seed.path"))
	assert.Equal(t, []string{"index.max_results", "index.rebuild_rate", "seed.path", "seed.watch", "storage.backend"}, store.Keys())
}

func TestConfigStore_WrongTypes(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("server.addr", 5000))
	require.NoError(t, store.Set("seed.watch", "yes"))

	assert.Empty(t, store.GetString("server.addr"))
	assert.False(t, store.GetBool("seed.watch"))
	assert.Zero(t, store.GetInt("seed.watch"))
	assert.Zero(t, store.GetFloat("missing"))
}

func TestConfigStore_PersistsAsTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("server.addr", ":8080"))
	require.NoError(t, store.Set("index.max_results", 10))
	require.NoError(t, store.Set("verbose", true))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[server]")
	assert.Contains(t, string(raw), "[index]")

	reloaded, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, ":8080", reloaded.GetString("server.addr"))
	assert.Equal(t, 10, reloaded.GetInt("index.max_results"))
	assert.True(t, reloaded.GetBool("verbose"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("k", "v"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_SetUnmarshallableValue(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Error(t, store.Set("channel", make(chan int)))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("index.max_results", n)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("index.max_results")
		}()
	}
	wg.Wait()

	require.NoError(t, store.Load())
	_, ok := store.Get("index.max_results")
	assert.True(t, ok)
}

func TestNest(t *testing.T) {
	got := nest(map[string]any{
		"a":     1,
		"a.b":   2,
		"x.y.z": "deep",
		"x.w":   true,
	})

	assert.Equal(t, map[string]any{
		"a": 1,
		"x": map[string]any{
			"w": true,
			"y": map[string]any{"z": "deep"},
		},
	}, got)
}
