package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-site/folio-backend/internal/locale"
)

func TestCompletionClient_Complete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header: %s", got)
		}

		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if body["model"] != "test-model" {
			t.Errorf("unexpected model: %v", body["model"])
		}
		if _, ok := body["response_format"]; !ok {
			t.Error("request missing response_format")
		}
		msgs, _ := body["messages"].([]any)
		if len(msgs) != 2 {
			t.Errorf("expected system+user messages, got %d", len(msgs))
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"{}"}}]}`))
	}))
	defer server.Close()

	client := NewCompletionClient(server.URL, "test-model")
	payload, err := client.Complete(context.Background(), "test-key", SystemPrompt(locale.English), "build me a site")
	require.NoError(t, err)

	text, shape, ok := ExtractText(payload)
	require.True(t, ok)
	assert.Equal(t, "chat_choices", shape)
	assert.Equal(t, "{}", text)
}

func TestCompletionClient_UpstreamStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer server.Close()

	client := NewCompletionClient(server.URL, "test-model")
	_, err := client.Complete(context.Background(), "k", "sys", "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "rate limited")
}

func TestCompletionClient_NetworkError(t *testing.T) {
	client := NewCompletionClient("http://127.0.0.1:1", "test-model")
	_, err := client.Complete(context.Background(), "k", "sys", "q")
	require.Error(t, err)
}

func TestCompletionClient_NonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway</html>"))
	}))
	defer server.Close()

	client := NewCompletionClient(server.URL, "test-model")
	_, err := client.Complete(context.Background(), "k", "sys", "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode upstream response")
}
