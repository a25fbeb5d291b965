package datastore

import (
	"path/filepath"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *ContentCache {
	t.Helper()
	cache, err := NewContentCache(filepath.Join(t.TempDir(), "cache.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })
	return cache
}

func TestContentCache_PutGet(t *testing.T) {
	cache := newTestCache(t)

	body := []byte("SELECT * FROM users;")
	require.NoError(t, cache.Put("https://a.com/dump.sql", body))

	got, ok := cache.Get("https://a.com/dump.sql")
	require.True(t, ok)
	assert.Equal(t, body, got)
}

func TestContentCache_Miss(t *testing.T) {
	cache := newTestCache(t)

	_, ok := cache.Get("https://never-stored.com/x")
	assert.False(t, ok)
}

func TestContentCache_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	first, err := NewContentCache(path, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, first.Put("https://a.com/f.json", []byte(`{"k":1}`)))
	require.NoError(t, first.Close())

	second, err := NewContentCache(path, zerolog.Nop())
	require.NoError(t, err)
	defer second.Close()

	got, ok := second.Get("https://a.com/f.json")
	require.True(t, ok)
	assert.Equal(t, []byte(`{"k":1}`), got)
}

func TestContentCache_LastWriteWins(t *testing.T) {
	cache := newTestCache(t)

	require.NoError(t, cache.Put("https://a.com/f", []byte("old")))
	require.NoError(t, cache.Put("https://a.com/f", []byte("new")))

	got, ok := cache.Get("https://a.com/f")
	require.True(t, ok)
	assert.Equal(t, []byte("new"), got)
}

func TestContentCache_ConcurrentDistinctKeys(t *testing.T) {
	cache := newTestCache(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			url := "https://a.com/file-" + string(rune('a'+n))
			assert.NoError(t, cache.Put(url, []byte(url)))
			got, ok := cache.Get(url)
			assert.True(t, ok)
			assert.Equal(t, []byte(url), got)
		}(i)
	}
	wg.Wait()
}

func TestHashKey_StableAndDistinct(t *testing.T) {
	assert.Equal(t, HashKey("https://a.com"), HashKey("https://a.com"))
	assert.NotEqual(t, HashKey("https://a.com"), HashKey("https://b.com"))
	assert.Len(t, HashKey("https://a.com"), 64)
}
