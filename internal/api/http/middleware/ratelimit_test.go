package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newLimitedRouter(rps float64, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimitMiddleware(rps, burst))
	r.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	return r
}

func TestRateLimit_AllowsWithinBurst(t *testing.T) {
	r := newLimitedRouter(1, 3)
	for i := 0; i < 3; i++ {
		rr := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/ping", nil)
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code, "request %d", i)
	}
}

func TestRateLimit_RejectsBeyondBurst(t *testing.T) {
	r := newLimitedRouter(0.001, 1)

	first := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	r.ServeHTTP(first, req)
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	req2, _ := http.NewRequest("GET", "/ping", nil)
	r.ServeHTTP(second, req2)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestRequestID_EchoedAndGenerated(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	rr := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/ping", nil)
	req.Header.Set("X-Request-Id", "given-id")
	r.ServeHTTP(rr, req)
	assert.Equal(t, "given-id", rr.Header().Get("X-Request-Id"))

	rr2 := httptest.NewRecorder()
	req2, _ := http.NewRequest("GET", "/ping", nil)
	r.ServeHTTP(rr2, req2)
	assert.NotEmpty(t, rr2.Header().Get("X-Request-Id"))
}
