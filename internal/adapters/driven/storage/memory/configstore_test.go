package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("server.addr", ":8080"))
	val, ok := store.Get("server.addr")
	require.True(t, ok)
	assert.Equal(t, ":8080", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("storage.backend", "memory")
	_ = store.Set("index.max_results", 10)
	_ = store.Set("index.rebuild_rate", 2.5)
	_ = store.Set("seed.watch", true)
	_ = store.Set("big", int64(42))

	assert.Equal(t, "memory", store.GetString("storage.backend"))
	assert.Equal(t, 10, store.GetInt("index.max_results"))
	assert.Equal(t, 42, store.GetInt("big"))
	assert.Equal(t, 2, store.GetInt("index.rebuild_rate"))
	assert.InDelta(t, 2.5, store.GetFloat("index.rebuild_rate"), 0.0001)
	assert.InDelta(t, 10.0, store.GetFloat("index.max_results"), 0.0001)
	assert.True(t, store.GetBool("seed.watch"))
}

func TestConfigStore_TypedGetters_WrongTypeOrMissing(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("seed.watch", "yes")
	_ = store.Set("index.max_results", "ten")

	assert.Empty(t, store.GetString("missing"))
	assert.Zero(t, store.GetInt("index.max_results"))
	assert.Zero(t, store.GetFloat("index.max_results"))
	assert.False(t, store.GetBool("seed.watch"))
}

func TestConfigStore_SaveLoadPath(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("k", "v")

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, "v", store.GetString("k"))
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()
	var wg sync.WaitGroup

	for i := 0; i < 20; i++ {
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

	_, ok := store.Get("index.max_results")
	assert.True(t, ok)
}

func TestConfigStore_Keys(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("server.addr", ":5000")
	_ = store.Set("index.max_results", 10)

	assert.Equal(t, []string{"index.max_results", "server.addr"}, store.Keys())
}
