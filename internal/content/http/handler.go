package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/folio-site/folio-backend/internal/content/domain"
	"github.com/folio-site/folio-backend/internal/content/repository"
	"github.com/folio-site/folio-backend/internal/content/service"
	"github.com/folio-site/folio-backend/internal/locale"
)

type Handler struct {
	cms   *service.CMSClient
	cache *repository.Cache // nil when Redis is not configured
}

func New(cms *service.CMSClient, cache *repository.Cache) *Handler {
	return &Handler{cms: cms, cache: cache}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/posts", h.list)
	rg.GET("/posts/:slug", h.get)
}

func (h *Handler) list(c *gin.Context) {
	loc := string(locale.Resolve(c.Query("locale")))

	if h.cache != nil {
		posts, err := h.cache.GetListing(c.Request.Context(), loc)
		if err != nil {
			log.Printf("[warn] operation=posts_list cache read failed: %v", err)
		}
		if posts != nil {
			c.JSON(http.StatusOK, gin.H{"ok": true, "posts": posts, "locale": loc, "cached": true})
			return
		}
	}

	posts, err := h.cms.ListPosts(c.Request.Context(), loc)
	if err != nil {
		log.Printf("[error] operation=posts_list cms error=%v", err)
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "upstream_error"})
		return
	}
	if posts == nil {
		posts = []domain.Post{}
	}

	if h.cache != nil {
		if err := h.cache.PutListing(c.Request.Context(), loc, posts); err != nil {
			log.Printf("[warn] operation=posts_list cache write failed: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "posts": posts, "locale": loc, "cached": false})
}

func (h *Handler) get(c *gin.Context) {
	slug := c.Param("slug")

	if h.cache != nil {
		post, err := h.cache.GetPost(c.Request.Context(), slug)
		if err != nil {
			log.Printf("[warn] operation=posts_get cache read failed: %v", err)
		}
		if post != nil {
			c.JSON(http.StatusOK, gin.H{"ok": true, "post": post, "cached": true})
			return
		}
	}

	post, err := h.cms.GetPost(c.Request.Context(), slug)
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "post not found"})
		return
	}
	if err != nil {
		log.Printf("[error] operation=posts_get cms error=%v", err)
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "upstream_error"})
		return
	}

	if h.cache != nil {
		if err := h.cache.PutPost(c.Request.Context(), post); err != nil {
			log.Printf("[warn] operation=posts_get cache write failed: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "post": post, "cached": false})
}
