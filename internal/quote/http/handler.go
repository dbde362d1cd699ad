package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/folio-site/folio-backend/internal/locale"
	"github.com/folio-site/folio-backend/internal/quote/domain"
	"github.com/folio-site/folio-backend/internal/quote/service"
)

type Handler struct{}

func New() *Handler { return &Handler{} }

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/quote", h.estimate)
}

func (h *Handler) estimate(c *gin.Context) {
	var req domain.Request
	// Malformed JSON is tolerated as an empty request; the missing-query
	// check below handles it.
	_ = c.ShouldBindJSON(&req)

	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "missing_query"})
		return
	}

	loc := locale.Resolve(req.Locale)
	est := service.Estimate(req.Query, loc)

	c.JSON(http.StatusOK, gin.H{
		"ok": true,
		"estimate": gin.H{
			"priceRangeUSD": est.PriceRangeUSD,
			"timelineWeeks": est.TimelineWeeks,
		},
		"mvp":         est.MVP,
		"assumptions": est.Assumptions,
		"locale":      est.Locale,
	})
}
