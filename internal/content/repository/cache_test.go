package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-site/folio-backend/internal/content/domain"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewCache(client), mr
}

func samplePosts() []domain.Post {
	return []domain.Post{
		{
			ID:          "1",
			Slug:        "hello-world",
			Title:       "Hello World",
			Summary:     "first post",
			Locale:      "en",
			Tags:        []string{"intro"},
			PublishedAt: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:     "2",
			Slug:   "second",
			Title:  "Second",
			Locale: "en",
		},
	}
}

func TestCache_ListingRoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	got, err := cache.GetListing(ctx, "en")
	require.NoError(t, err)
	assert.Nil(t, got, "empty cache must read as a miss")

	require.NoError(t, cache.PutListing(ctx, "en", samplePosts()))

	got, err = cache.GetListing(ctx, "en")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "hello-world", got[0].Slug)
	assert.Equal(t, samplePosts()[0].PublishedAt, got[0].PublishedAt)
}

func TestCache_PutListingIndexesSlugs(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.PutListing(ctx, "en", samplePosts()))

	post, err := cache.GetPost(ctx, "second")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "Second", post.Title)
}

func TestCache_Expiry(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.PutListing(ctx, "he", samplePosts()))
	mr.FastForward(cacheTTL + time.Second)

	got, err := cache.GetListing(ctx, "he")
	require.NoError(t, err)
	assert.Nil(t, got)

	post, err := cache.GetPost(ctx, "hello-world")
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestCache_LocalesAreIsolated(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.PutListing(ctx, "en", samplePosts()))

	got, err := cache.GetListing(ctx, "he")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCache_PutPost(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	p := samplePosts()[0]
	require.NoError(t, cache.PutPost(ctx, &p))

	got, err := cache.GetPost(ctx, p.Slug)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.Title, got.Title)
}
