package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// CompletionClient talks to an OpenAI-compatible completion endpoint. The
// request body is built from go-openai's typed structures, but the call and
// the decode go through our own client: the proxy has to tolerate several
// upstream envelope shapes (see extract.go), so the response is decoded into
// a generic map instead of a fixed struct.
type CompletionClient struct {
	baseURL string
	model   string
	client  *http.Client
}

func NewCompletionClient(baseURL, model string) *CompletionClient {
	return &CompletionClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
}

// Complete sends one completion request, no retries. The returned map is the
// raw upstream payload; callers extract and parse the model text themselves.
func (c *CompletionClient) Complete(ctx context.Context, apiKey, systemPrompt, userQuery string) (map[string]any, error) {
	body := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userQuery},
		},
		Temperature: Temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   "project_plan_" + SchemaVersion,
				Schema: json.RawMessage(SchemaJSON),
				Strict: true,
			},
		},
	}

	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("upstream returned status %d: %s", resp.StatusCode, sample(string(raw), parseSampleLen))
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode upstream response: %w", err)
	}
	return payload, nil
}

// sample truncates s to n characters. Rune-based so Hebrew text is neither
// shortchanged on its budget nor cut mid-sequence.
func sample(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
