// The worker keeps the blog content cache warm so the API rarely pays the
// CMS round trip on reader traffic. It is optional: without Redis or a CMS
// URL configured there is nothing to do and it exits.
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/folio-site/folio-backend/config"
	"github.com/folio-site/folio-backend/internal/bootstrap"
	contentcron "github.com/folio-site/folio-backend/internal/content/cron"
	contentsvc "github.com/folio-site/folio-backend/internal/content/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if cfg.CMS.BaseURL == "" {
		log.Fatal("CMS_BASE_URL is required for the content worker")
	}
	cache := bootstrap.NewCache(cfg.Redis)
	if cache == nil {
		log.Fatal("REDIS_ADDR is required for the content worker")
	}

	refresher := contentcron.NewRefresher(
		contentsvc.NewCMSClient(cfg.CMS.BaseURL, cfg.CMS.Token),
		cache,
	)

	schedule := os.Getenv("CONTENT_REFRESH_SCHEDULE")
	if schedule == "" {
		schedule = "@every 5m"
	}
	c, err := refresher.Start(schedule)
	if err != nil {
		log.Fatalf("scheduler: %v", err)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx := c.Stop()
	<-ctx.Done()
	log.Println("content worker stopped")
}
