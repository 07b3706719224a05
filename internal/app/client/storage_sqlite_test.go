package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteCacheRoundTrip(t *testing.T) {
	cache, err := NewSQLiteCache(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	defer cache.Close()

	_, err = cache.Get("users.json")
	assert.Error(t, err)

	require.NoError(t, cache.Put("users.json", []byte(`[{"id":"u1"}]`)))

	got, err := cache.Get("users.json")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"u1"}]`), got)

	// Put overwrites.
	require.NoError(t, cache.Put("users.json", []byte(`[]`)))
	got, err = cache.Get("users.json")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	require.NoError(t, cache.Delete("users.json"))
	_, err = cache.Get("users.json")
	assert.Error(t, err)
}

func TestSQLiteCachePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")

	cache, err := NewSQLiteCache(path)
	require.NoError(t, err)
	require.NoError(t, cache.Put("plans.json", []byte(`[{"id":"p1"}]`)))
	require.NoError(t, cache.Close())

	reopened, err := NewSQLiteCache(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get("plans.json")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"p1"}]`), got)
}

func TestMemoryCacheCopiesPayload(t *testing.T) {
	cache := NewMemoryCache()
	payload := []byte(`[1,2,3]`)
	require.NoError(t, cache.Put("x.json", payload))

	payload[0] = '!'

	got, err := cache.Get("x.json")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2,3]`), got)
}
