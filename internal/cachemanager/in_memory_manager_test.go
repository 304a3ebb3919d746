package cachemanager

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type commitKey string

type renderedPage struct {
	Entity string
	HTML   string
}

func TestInMemoryCacheManager_SetGet(t *testing.T) {
	cache := NewInMemoryCacheManager[string, renderedPage]("pages", DefaultExpiration, DefaultCleanupInterval)
	page := renderedPage{Entity: "CreateUnit", HTML: "<p>creates a unit</p>"}

	cache.Set(context.Background(), "CreateUnit", page, DefaultExpiration)

	got, ok := cache.Get(context.Background(), "CreateUnit")
	require.True(t, ok)
	require.Equal(t, page, got)
	require.Equal(t, 1, cache.Len())
}

func TestInMemoryCacheManager_NamedKeyType(t *testing.T) {
	cache := NewInMemoryCacheManager[commitKey, string]("syntax.js", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), commitKey("abc123"), "const natives = /^(?:A)\\b/", time.Minute)

	got, ok := cache.Get(context.Background(), "abc123")
	require.True(t, ok)
	require.Contains(t, got, "natives")
}

func TestInMemoryCacheManager_Miss(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("markdown", DefaultExpiration, DefaultCleanupInterval)
	got, ok := cache.Get(context.Background(), "missing")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_WrongType(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("markdown", DefaultExpiration, DefaultCleanupInterval)
	cache.cache.Set("key", 123, DefaultExpiration)
	got, ok := cache.Get(context.Background(), "key")
	require.False(t, ok)
	require.Empty(t, got)
}

func TestInMemoryCacheManager_Expiry(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("markdown", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(context.Background(), "key", "value", time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	_, ok := cache.Get(context.Background(), "key")
	require.False(t, ok)
}

func TestInMemoryCacheManager_GetWithRefresh(t *testing.T) {
	cache := NewInMemoryCacheManager[string, string]("markdown", DefaultExpiration, DefaultCleanupInterval)

	_, ok := cache.GetWithRefresh(context.Background(), "key", time.Hour)
	require.False(t, ok)

	cache.Set(context.Background(), "key", "value", 20*time.Millisecond)
	got, ok := cache.GetWithRefresh(context.Background(), "key", time.Hour)
	require.True(t, ok)
	require.Equal(t, "value", got)

	time.Sleep(40 * time.Millisecond)
	_, ok = cache.Get(context.Background(), "key")
	require.True(t, ok, "refresh should have extended the ttl")
}

func TestInMemoryCacheManager_DeleteAndFlush(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemoryCacheManager[string, string]("markdown", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(ctx, "a", "1", DefaultExpiration)
	cache.Set(ctx, "b", "2", DefaultExpiration)

	require.NoError(t, cache.Delete(ctx))
	require.NoError(t, cache.Delete(ctx, "a"))
	_, ok := cache.Get(ctx, "a")
	require.False(t, ok)

	require.NoError(t, cache.Flush(ctx))
	_, ok = cache.Get(ctx, "b")
	require.False(t, ok)
	require.Zero(t, cache.Len())
}
