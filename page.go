package modex

import (
	"context"
	"time"
)

// Page represents a crawled and preprocessed documentation page.
type Page struct {
	ID          string    `json:"id"`
	SeedURL     string    `json:"seedUrl"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Content     string    `json:"content"` // structured text (markdown blocks)
	ContentHash string    `json:"contentHash"`
	Depth       int       `json:"depth"`
	Position    int       `json:"position"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the page contains invalid fields.
func (p *Page) Validate() error {
	if p.SeedURL == "" {
		return Errorf(EINVALID, "page seed URL required")
	}
	if p.URL == "" {
		return Errorf(EINVALID, "page URL required")
	}
	return nil
}

// PageStore persists crawled pages so extraction can be rerun without
// recrawling.
type PageStore interface {
	// CreatePage stores a page, assigning an ID if unset.
	CreatePage(ctx context.Context, page *Page) error

	// FindPagesBySeed retrieves all pages saved for a seed URL, ordered by
	// position. Returns an empty slice if none exist.
	FindPagesBySeed(ctx context.Context, seedURL string) ([]*Page, error)

	// DeletePagesBySeed removes all pages saved for a seed URL.
	DeletePagesBySeed(ctx context.Context, seedURL string) error
}
