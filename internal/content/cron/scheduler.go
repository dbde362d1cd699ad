package cron

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/folio-site/folio-backend/internal/content/repository"
	"github.com/folio-site/folio-backend/internal/content/service"
	"github.com/folio-site/folio-backend/internal/locale"
)

// Refresher keeps the post cache warm so reader traffic rarely hits the CMS.
type Refresher struct {
	cms   *service.CMSClient
	cache *repository.Cache
}

func NewRefresher(cms *service.CMSClient, cache *repository.Cache) *Refresher {
	return &Refresher{cms: cms, cache: cache}
}

// Start schedules the periodic refresh and runs one refresh immediately.
func (r *Refresher) Start(spec string) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(spec, r.RefreshAll); err != nil {
		return nil, err
	}

	log.Printf("content refresher started (schedule %q)", spec)
	r.RefreshAll()
	c.Start()
	return c, nil
}

// RefreshAll re-fetches the post listing for every supported locale.
func (r *Refresher) RefreshAll() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	for _, loc := range locale.Supported() {
		posts, err := r.cms.ListPosts(ctx, string(loc))
		if err != nil {
			log.Printf("[warn] operation=content_refresh locale=%s cms error=%v", loc, err)
			continue
		}
		if err := r.cache.PutListing(ctx, string(loc), posts); err != nil {
			log.Printf("[warn] operation=content_refresh locale=%s cache error=%v", loc, err)
			continue
		}
		log.Printf("[info] operation=content_refresh locale=%s posts=%d", loc, len(posts))
	}
}
