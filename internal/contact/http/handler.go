package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-site/folio-backend/internal/contact/domain"
	"github.com/folio-site/folio-backend/internal/contact/service"
)

type Handler struct {
	mailer *service.Mailer
}

func New(mailer *service.Mailer) *Handler { return &Handler{mailer: mailer} }

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/contact", h.submit)
}

func (h *Handler) submit(c *gin.Context) {
	var sub domain.Submission
	_ = c.ShouldBindJSON(&sub)

	if errs := service.Validate(sub); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	if err := h.mailer.Send(c.Request.Context(), sub); err != nil {
		log.Printf("[error] operation=contact_send error=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
