// Package service holds the read-only client for the headless CMS that
// hosts the site's blog. The browser never talks to the CMS directly; this
// backend proxies reads so the CMS token stays server-side.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/folio-site/folio-backend/internal/content/domain"
)

type CMSClient struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewCMSClient(baseURL, token string) *CMSClient {
	return &CMSClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type postListing struct {
	Items []domain.Post `json:"items"`
}

// ListPosts fetches published posts, optionally filtered by locale.
func (c *CMSClient) ListPosts(ctx context.Context, loc string) ([]domain.Post, error) {
	u, err := url.Parse(c.baseURL + "/posts")
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if loc != "" {
		q := u.Query()
		q.Set("locale", loc)
		u.RawQuery = q.Encode()
	}

	var listing postListing
	if err := c.getJSON(ctx, u.String(), &listing); err != nil {
		return nil, err
	}
	return listing.Items, nil
}

// GetPost fetches a single post by slug.
func (c *CMSClient) GetPost(ctx context.Context, slug string) (*domain.Post, error) {
	var post domain.Post
	if err := c.getJSON(ctx, c.baseURL+"/posts/"+url.PathEscape(slug), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (c *CMSClient) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("cms request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("cms returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode cms response: %w", err)
	}
	return nil
}
