package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pulseai/modex"
)

// Compile-time interface verification.
var _ modex.PageStore = (*PageStore)(nil)

// PageStore implements modex.PageStore using SQLite.
type PageStore struct {
	db *DB
}

// NewPageStore creates a new PageStore.
func NewPageStore(db *DB) *PageStore {
	return &PageStore{db: db}
}

// CreatePage stores a page, assigning an ID if unset.
func (s *PageStore) CreatePage(ctx context.Context, page *modex.Page) error {
	if err := page.Validate(); err != nil {
		return err
	}

	if page.ID == "" {
		page.ID = uuid.New().String()
	}
	if page.FetchedAt.IsZero() {
		page.FetchedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pages (id, seed_url, url, title, content, content_hash, depth, position, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, page.ID, page.SeedURL, page.URL, page.Title, page.Content, page.ContentHash,
		page.Depth, page.Position, page.FetchedAt.Format(time.RFC3339))

	return err
}

// FindPagesBySeed retrieves all pages saved for a seed URL, ordered by
// position. Returns an empty slice if none exist.
func (s *PageStore) FindPagesBySeed(ctx context.Context, seedURL string) ([]*modex.Page, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, seed_url, url, title, content, content_hash, depth, position, fetched_at
		FROM pages
		WHERE seed_url = ?
		ORDER BY position ASC
	`, seedURL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pages := []*modex.Page{}
	for rows.Next() {
		var page modex.Page
		var fetchedAt string

		if err := rows.Scan(&page.ID, &page.SeedURL, &page.URL, &page.Title,
			&page.Content, &page.ContentHash, &page.Depth, &page.Position, &fetchedAt); err != nil {
			return nil, err
		}

		var parseErr error
		page.FetchedAt, parseErr = time.Parse(time.RFC3339, fetchedAt)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse fetched_at: %w", parseErr)
		}

		pages = append(pages, &page)
	}

	return pages, rows.Err()
}

// DeletePagesBySeed removes all pages saved for a seed URL.
func (s *PageStore) DeletePagesBySeed(ctx context.Context, seedURL string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM pages WHERE seed_url = ?", seedURL)
	return err
}

// FindPageByURL retrieves the most recently fetched page for a URL.
func (s *PageStore) FindPageByURL(ctx context.Context, url string) (*modex.Page, error) {
	var page modex.Page
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, seed_url, url, title, content, content_hash, depth, position, fetched_at
		FROM pages
		WHERE url = ?
		ORDER BY fetched_at DESC
		LIMIT 1
	`, url).Scan(&page.ID, &page.SeedURL, &page.URL, &page.Title,
		&page.Content, &page.ContentHash, &page.Depth, &page.Position, &fetchedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, modex.Errorf(modex.ENOTFOUND, "page not found")
	}
	if err != nil {
		return nil, err
	}

	var parseErr error
	page.FetchedAt, parseErr = time.Parse(time.RFC3339, fetchedAt)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse fetched_at: %w", parseErr)
	}

	return &page, nil
}
