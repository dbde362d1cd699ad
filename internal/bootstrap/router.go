package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/folio-site/folio-backend/internal/api/http"
	"github.com/folio-site/folio-backend/internal/api/http/middleware"
	assisthttp "github.com/folio-site/folio-backend/internal/assist/http"
	assistsvc "github.com/folio-site/folio-backend/internal/assist/service"
	checkouthttp "github.com/folio-site/folio-backend/internal/checkout/http"
	contacthttp "github.com/folio-site/folio-backend/internal/contact/http"
	contactsvc "github.com/folio-site/folio-backend/internal/contact/service"
	contenthttp "github.com/folio-site/folio-backend/internal/content/http"
	"github.com/folio-site/folio-backend/internal/content/repository"
	contentsvc "github.com/folio-site/folio-backend/internal/content/service"
	quotehttp "github.com/folio-site/folio-backend/internal/quote/http"
)

type RouterDeps struct {
	ServiceName  string
	Version      string
	CORSOrigins  []string
	RateLimitRPS float64
	RateBurst    int

	Assistant *assistsvc.CompletionClient
	Mailer    *contactsvc.Mailer
	CMS       *contentsvc.CMSClient
	Cache     *repository.Cache // nil when Redis is not configured
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware(dep.CORSOrigins))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Cache)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api")
	api.Use(middleware.RequestIDMiddleware())
	api.Use(middleware.RateLimitMiddleware(dep.RateLimitRPS, dep.RateBurst))

	quotehttp.New().Register(api)
	assisthttp.New(dep.Assistant).Register(api)
	contacthttp.New(dep.Mailer).Register(api)
	checkouthttp.New().Register(api)
	contenthttp.New(dep.CMS, dep.Cache).Register(api)

	return r
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "X-Request-Id")
	return cors.New(cfg)
}
