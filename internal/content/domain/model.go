package domain

import "time"

// Post is a blog entry read from the headless CMS. The backend only proxies
// and caches posts; it never writes them.
type Post struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Body        string    `json:"body"`
	Tags        []string  `json:"tags"`
	Locale      string    `json:"locale"`
	PublishedAt time.Time `json:"publishedAt"`
}
