package mock

import (
	"context"

	"github.com/pulseai/modex"
)

var _ modex.PageStore = (*PageStore)(nil)

// PageStore is a mock implementation of modex.PageStore.
type PageStore struct {
	CreatePageFn        func(ctx context.Context, page *modex.Page) error
	FindPagesBySeedFn   func(ctx context.Context, seedURL string) ([]*modex.Page, error)
	DeletePagesBySeedFn func(ctx context.Context, seedURL string) error
}

func (s *PageStore) CreatePage(ctx context.Context, page *modex.Page) error {
	return s.CreatePageFn(ctx, page)
}

func (s *PageStore) FindPagesBySeed(ctx context.Context, seedURL string) ([]*modex.Page, error) {
	return s.FindPagesBySeedFn(ctx, seedURL)
}

func (s *PageStore) DeletePagesBySeed(ctx context.Context, seedURL string) error {
	return s.DeletePagesBySeedFn(ctx, seedURL)
}
