package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCheckout_AlwaysNotImplemented(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New().Register(r.Group("/api"))

	for _, body := range []string{"", "{}", `{"amount":100}`} {
		req, err := http.NewRequest("POST", "/api/checkout", strings.NewReader(body))
		if err != nil {
			t.Fatal(err)
		}
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		if rr.Code != http.StatusNotImplemented {
			t.Errorf("body %q: got status %d, want %d", body, rr.Code, http.StatusNotImplemented)
		}

		var resp map[string]any
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal response: %v", err)
		}
		if resp["ok"] != false {
			t.Errorf("expected ok=false, got %v", resp["ok"])
		}
	}
}
