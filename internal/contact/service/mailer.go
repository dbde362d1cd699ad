package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/folio-site/folio-backend/internal/contact/domain"
)

// Mailer relays contact submissions through a Resend-style transactional
// mail API. When no API key is configured the send becomes a logged no-op:
// local development should not require mail credentials, and the contact
// endpoint still reports success.
type Mailer struct {
	baseURL string
	from    string
	to      string
	client  *http.Client

	// apiKey resolved per send so local .env edits take effect immediately.
	apiKey func() string
}

func NewMailer(baseURL, from, to string) *Mailer {
	return &Mailer{
		baseURL: strings.TrimRight(baseURL, "/"),
		from:    from,
		to:      to,
		client:  &http.Client{Timeout: 30 * time.Second},
		apiKey:  func() string { return os.Getenv("RESEND_API_KEY") },
	}
}

// NewMailerWithKeyFunc is used by tests to inject the key source.
func NewMailerWithKeyFunc(baseURL, from, to string, apiKey func() string) *Mailer {
	m := NewMailer(baseURL, from, to)
	m.apiKey = apiKey
	return m
}

type sendReq struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	Tag     string `json:"tag,omitempty"`
}

// Send relays one submission. A missing API key is logged and treated as
// sent; a provider failure is a real error.
func (m *Mailer) Send(ctx context.Context, s domain.Submission) error {
	key := m.apiKey()
	if key == "" {
		log.Printf("[warn] operation=contact_send no mail API key configured, message from %s dropped", s.Email)
		return nil
	}

	body := sendReq{
		From:    m.from,
		To:      m.to,
		Subject: fmt.Sprintf("New contact message from %s", s.Name),
		Text:    fmt.Sprintf("From: %s <%s>\n\n%s", s.Name, s.Email, s.Message),
		Tag:     "contact-" + uuid.New().String(),
	}
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal mail request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+"/emails", bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+key)

	resp, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("mail request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mail provider returned status %d: %s", resp.StatusCode, raw)
	}
	return nil
}
