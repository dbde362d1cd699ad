package main

import (
	"log"

	"github.com/folio-site/folio-backend/config"
	assistsvc "github.com/folio-site/folio-backend/internal/assist/service"
	"github.com/folio-site/folio-backend/internal/bootstrap"
	contactsvc "github.com/folio-site/folio-backend/internal/contact/service"
	contentsvc "github.com/folio-site/folio-backend/internal/content/service"
)

const serviceName = "folio-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	cache := bootstrap.NewCache(cfg.Redis)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:  serviceName,
		Version:      cfg.App.Version,
		CORSOrigins:  cfg.Server.CORSOrigins,
		RateLimitRPS: cfg.Server.RateLimitRPS,
		RateBurst:    cfg.Server.RateBurst,
		Assistant:    assistsvc.NewCompletionClient(cfg.Assistant.BaseURL, cfg.Assistant.Model),
		Mailer:       contactsvc.NewMailer(cfg.Mail.BaseURL, cfg.Mail.From, cfg.Mail.To),
		CMS:          contentsvc.NewCMSClient(cfg.CMS.BaseURL, cfg.CMS.Token),
		Cache:        cache,
	})

	log.Printf("%s %s listening on :%s", serviceName, cfg.App.Version, cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
