package http

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/folio-site/folio-backend/internal/assist/service"
	"github.com/folio-site/folio-backend/internal/locale"
)

type assistReq struct {
	Query  string `json:"query"`
	Locale string `json:"locale,omitempty"`
}

type Handler struct {
	client *service.CompletionClient

	// apiKey is resolved per request so key rotation needs no restart.
	apiKey func() string
}

func New(client *service.CompletionClient) *Handler {
	return &Handler{
		client: client,
		apiKey: func() string { return os.Getenv("OPENAI_API_KEY") },
	}
}

// NewWithKeyFunc is used by tests to inject the key source.
func NewWithKeyFunc(client *service.CompletionClient, apiKey func() string) *Handler {
	return &Handler{client: client, apiKey: apiKey}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.POST("/assist", h.assist)
}

// assist is a straight-line pipeline: validate input, resolve the key,
// call upstream once, extract the text, parse the contract. No retries,
// no caching; every failure maps to one fixed error code.
func (h *Handler) assist(c *gin.Context) {
	var req assistReq
	// Malformed JSON is tolerated as an empty request.
	_ = c.ShouldBindJSON(&req)

	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "missing_query"})
		return
	}

	key := h.apiKey()
	if key == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "missing_api_key"})
		return
	}

	loc := locale.Resolve(req.Locale)
	query := service.TruncateQuery(req.Query)

	payload, err := h.client.Complete(c.Request.Context(), key, service.SystemPrompt(loc), query)
	if err != nil {
		log.Printf("[warn] operation=assist upstream call failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "upstream_error", "message": err.Error()})
		return
	}

	text, shape, ok := service.ExtractText(payload)
	if !ok {
		log.Printf("[warn] operation=assist no known response shape in upstream payload")
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "bad_response", "upstream": payload})
		return
	}

	out, err := service.ParseOutput(text)
	if err != nil {
		log.Printf("[warn] operation=assist shape=%s parse failed: %v", shape, err)
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "parse_error", "sample": service.Sample(text)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "data": out, "locale": loc})
}
