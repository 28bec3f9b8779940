package modex

import "context"

// SitemapService discovers documentation URLs from website sitemaps.
type SitemapService interface {
	// DiscoverURLs finds URLs under baseURL from the site's sitemaps.
	// Returns an empty slice (not nil) if no sitemaps are found.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
