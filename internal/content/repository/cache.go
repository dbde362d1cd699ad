package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/folio-site/folio-backend/internal/content/domain"
)

const (
	postKeyPrefix     = "content:post:"  // Cached post by slug: content:post:{slug}
	postListKeyPrefix = "content:posts:" // Cached listing per locale: content:posts:{locale}
	cacheTTL          = 10 * time.Minute
)

// Cache is a read-through cache for CMS posts. A miss returns (nil, nil);
// Redis being down degrades to a miss so the CMS path still works.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func (c *Cache) postKey(slug string) string { return postKeyPrefix + slug }
func (c *Cache) listKey(loc string) string  { return postListKeyPrefix + loc }

// GetListing returns the cached post listing for a locale, or nil on miss.
func (c *Cache) GetListing(ctx context.Context, loc string) ([]domain.Post, error) {
	raw, err := c.client.Get(ctx, c.listKey(loc)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get listing: %w", err)
	}

	var posts []domain.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, fmt.Errorf("unmarshal cached listing: %w", err)
	}
	return posts, nil
}

// PutListing stores a listing for a locale and indexes each post by slug in
// one pipeline, all entries sharing the TTL.
func (c *Cache) PutListing(ctx context.Context, loc string, posts []domain.Post) error {
	raw, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("marshal listing: %w", err)
	}

	pipe := c.client.Pipeline()
	pipe.Set(ctx, c.listKey(loc), raw, cacheTTL)
	for _, p := range posts {
		b, err := json.Marshal(p)
		if err != nil {
			return fmt.Errorf("marshal post %s: %w", p.Slug, err)
		}
		pipe.Set(ctx, c.postKey(p.Slug), b, cacheTTL)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache put listing: %w", err)
	}
	return nil
}

// GetPost returns a cached post by slug, or nil on miss.
func (c *Cache) GetPost(ctx context.Context, slug string) (*domain.Post, error) {
	raw, err := c.client.Get(ctx, c.postKey(slug)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get post: %w", err)
	}

	var post domain.Post
	if err := json.Unmarshal(raw, &post); err != nil {
		return nil, fmt.Errorf("unmarshal cached post: %w", err)
	}
	return &post, nil
}

// PutPost caches a single post by slug.
func (c *Cache) PutPost(ctx context.Context, post *domain.Post) error {
	raw, err := json.Marshal(post)
	if err != nil {
		return fmt.Errorf("marshal post: %w", err)
	}
	if err := c.client.Set(ctx, c.postKey(post.Slug), raw, cacheTTL).Err(); err != nil {
		return fmt.Errorf("cache put post: %w", err)
	}
	return nil
}

// Ping reports cache availability, used by the health endpoint.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
