// Package http holds the checkout placeholder. Online payment for the quote
// flow is planned but not built; the endpoint exists so the frontend has a
// stable URL to point at.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func New() *Handler { return &Handler{} }

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/checkout", h.checkout)
}

func (h *Handler) checkout(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{
		"ok":    false,
		"error": "checkout is not implemented",
	})
}
