package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/folio-site/folio-backend/config"
	"github.com/folio-site/folio-backend/internal/content/repository"
)

// NewCache connects to Redis for the content cache. Returns nil when no
// REDIS_ADDR is configured: the site works without a cache, every post read
// just goes to the CMS.
func NewCache(cfg config.RedisConfig) *repository.Cache {
	if cfg.Addr == "" {
		log.Println("No REDIS_ADDR configured, content cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Warning: Redis ping failed (%v), content cache disabled", err)
		return nil
	}

	return repository.NewCache(client)
}
