package crawl_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/pulseai/modex"
	"github.com/pulseai/modex/crawl"
	"github.com/pulseai/modex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testSite wires a Crawler against an in-memory site description.
type testSite struct {
	mu      sync.Mutex
	pages   map[string]string                  // url -> html
	links   map[string][]modex.DiscoveredLink  // url -> outgoing links
	fetched []string                           // urls in fetch order
}

func (s *testSite) fetcher() *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(ctx context.Context, url string) (string, error) {
			s.mu.Lock()
			s.fetched = append(s.fetched, url)
			s.mu.Unlock()
			html, ok := s.pages[url]
			if !ok {
				return "", fmt.Errorf("HTTP 404 for %s", url)
			}
			return html, nil
		},
	}
}

func (s *testSite) linkExtractor() *mock.LinkExtractor {
	return &mock.LinkExtractor{
		ExtractLinksFn: func(html, baseURL string) ([]modex.DiscoveredLink, error) {
			return s.links[baseURL], nil
		},
	}
}

// passthrough extraction: title is the URL-independent marker, content is the
// page HTML unchanged.
func passthroughExtractor() *mock.ContentExtractor {
	return &mock.ContentExtractor{
		ExtractFn: func(html string) (*modex.ExtractResult, error) {
			return &modex.ExtractResult{Title: "t", ContentHTML: html}, nil
		},
	}
}

func passthroughConverter() *mock.Converter {
	return &mock.Converter{
		ConvertFn: func(html string) (string, error) {
			return html, nil
		},
	}
}

func newTestCrawler(site *testSite) *crawl.Crawler {
	return &crawl.Crawler{
		Fetcher:     site.fetcher(),
		Extractor:   passthroughExtractor(),
		Converter:   passthroughConverter(),
		Links:       site.linkExtractor(),
		Concurrency: 1,
	}
}

func TestCrawler_Crawl_follows_links_breadth_first(t *testing.T) {
	t.Parallel()

	seed := "https://example.com/docs/"
	site := &testSite{
		pages: map[string]string{
			seed:                              "seed page",
			"https://example.com/docs/a":      "page a",
			"https://example.com/docs/b":      "page b",
			"https://example.com/docs/a/deep": "deep page",
		},
		links: map[string][]modex.DiscoveredLink{
			seed: {
				{URL: "https://example.com/docs/a", Text: "A"},
				{URL: "https://example.com/docs/b", Text: "B"},
			},
			"https://example.com/docs/a": {
				{URL: "https://example.com/docs/a/deep", Text: "Deep"},
			},
		},
	}

	c := newTestCrawler(site)
	c.MaxDepth = 2

	result, err := c.Crawl(context.Background(), seed)
	require.NoError(t, err)

	assert.Equal(t, []string{
		seed,
		"https://example.com/docs/a",
		"https://example.com/docs/b",
		"https://example.com/docs/a/deep",
	}, site.fetched, "fetch order should be breadth-first")

	require.Len(t, result.Pages, 4)
	assert.Equal(t, 0, result.Pages[0].Depth)
	assert.Equal(t, 1, result.Pages[1].Depth)
	assert.Equal(t, 2, result.Pages[3].Depth)
	for i, page := range result.Pages {
		assert.Equal(t, i, page.Position, "positions should follow visitation order")
		assert.Equal(t, seed, page.SeedURL)
	}
}

func TestCrawler_Crawl_respects_max_depth(t *testing.T) {
	t.Parallel()

	seed := "https://example.com/docs/"
	site := &testSite{
		pages: map[string]string{
			seed:                              "seed page",
			"https://example.com/docs/a":      "page a",
			"https://example.com/docs/a/deep": "deep page",
		},
		links: map[string][]modex.DiscoveredLink{
			seed: {
				{URL: "https://example.com/docs/a", Text: "A"},
			},
			"https://example.com/docs/a": {
				{URL: "https://example.com/docs/a/deep", Text: "Deep"},
			},
		},
	}

	c := newTestCrawler(site)
	c.MaxDepth = 1

	result, err := c.Crawl(context.Background(), seed)
	require.NoError(t, err)

	assert.Len(t, result.Pages, 2)
	assert.NotContains(t, site.fetched, "https://example.com/docs/a/deep",
		"links beyond max depth should not be fetched")
}

func TestCrawler_Crawl_skips_external_and_irrelevant_links(t *testing.T) {
	t.Parallel()

	seed := "https://example.com/docs/"
	site := &testSite{
		pages: map[string]string{
			seed:                         "seed page",
			"https://example.com/docs/a": "page a",
		},
		links: map[string][]modex.DiscoveredLink{
			seed: {
				{URL: "https://example.com/docs/a", Text: "A"},
				{URL: "https://other.com/docs/x", Text: "External"},
				{URL: "https://example.com/blog/post", Text: "Post"},
				{URL: "https://example.com/console", Text: "Sign up"},
			},
		},
	}

	c := newTestCrawler(site)

	result, err := c.Crawl(context.Background(), seed)
	require.NoError(t, err)

	assert.Len(t, result.Pages, 2)
	assert.NotContains(t, site.fetched, "https://other.com/docs/x")
	assert.NotContains(t, site.fetched, "https://example.com/blog/post")
	assert.NotContains(t, site.fetched, "https://example.com/console")
}

func TestCrawler_Crawl_deduplicates_identical_content(t *testing.T) {
	t.Parallel()

	seed := "https://example.com/docs/"
	site := &testSite{
		pages: map[string]string{
			seed:                             "seed page",
			"https://example.com/docs/a":     "same content",
			"https://example.com/docs/alias": "same content",
		},
		links: map[string][]modex.DiscoveredLink{
			seed: {
				{URL: "https://example.com/docs/a", Text: "A"},
				{URL: "https://example.com/docs/alias", Text: "Alias"},
			},
		},
	}

	c := newTestCrawler(site)

	result, err := c.Crawl(context.Background(), seed)
	require.NoError(t, err)

	assert.Len(t, result.Pages, 2, "second URL with identical content should be dropped")
	assert.Equal(t, 1, result.Duplicates)
}

func TestCrawler_Crawl_counts_fetch_failures_and_continues(t *testing.T) {
	t.Parallel()

	seed := "https://example.com/docs/"
	site := &testSite{
		pages: map[string]string{
			seed:                         "seed page",
			"https://example.com/docs/b": "page b",
			// /docs/a intentionally missing
		},
		links: map[string][]modex.DiscoveredLink{
			seed: {
				{URL: "https://example.com/docs/a", Text: "A"},
				{URL: "https://example.com/docs/b", Text: "B"},
			},
		},
	}

	c := newTestCrawler(site)

	result, err := c.Crawl(context.Background(), seed)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Failed)
	assert.Len(t, result.Pages, 2, "crawl should continue past a failed fetch")
}

func TestCrawler_Crawl_seeds_frontier_from_sitemap(t *testing.T) {
	t.Parallel()

	seed := "https://example.com/docs/"
	site := &testSite{
		pages: map[string]string{
			seed:                               "seed page",
			"https://example.com/docs/from-sm": "sitemap page",
		},
		links: map[string][]modex.DiscoveredLink{},
	}

	c := newTestCrawler(site)
	c.Sitemaps = &mock.SitemapService{
		DiscoverURLsFn: func(ctx context.Context, baseURL string) ([]string, error) {
			return []string{"https://example.com/docs/from-sm"}, nil
		},
	}

	result, err := c.Crawl(context.Background(), seed)
	require.NoError(t, err)

	require.Len(t, result.Pages, 2)
	assert.Equal(t, "https://example.com/docs/from-sm", result.Pages[1].URL)
	assert.Equal(t, 1, result.Pages[1].Depth, "sitemap URLs enter at depth 1")
}

func TestCrawler_Crawl_sitemap_failure_is_not_fatal(t *testing.T) {
	t.Parallel()

	seed := "https://example.com/docs/"
	site := &testSite{
		pages: map[string]string{seed: "seed page"},
		links: map[string][]modex.DiscoveredLink{},
	}

	c := newTestCrawler(site)
	c.Sitemaps = &mock.SitemapService{
		DiscoverURLsFn: func(ctx context.Context, baseURL string) ([]string, error) {
			return nil, fmt.Errorf("robots.txt unreachable")
		},
	}

	result, err := c.Crawl(context.Background(), seed)
	require.NoError(t, err)
	assert.Len(t, result.Pages, 1)
}

func TestCrawler_Crawl_uses_fallback_extractor_when_no_content_found(t *testing.T) {
	t.Parallel()

	seed := "https://example.com/docs/"
	site := &testSite{
		pages: map[string]string{seed: "seed page"},
		links: map[string][]modex.DiscoveredLink{},
	}

	c := newTestCrawler(site)
	c.Extractor = &mock.ContentExtractor{
		ExtractFn: func(html string) (*modex.ExtractResult, error) {
			return nil, modex.Errorf(modex.ENOTFOUND, "no content found")
		},
	}
	var fallbackUsed bool
	c.Fallback = &mock.ContentExtractor{
		ExtractFn: func(html string) (*modex.ExtractResult, error) {
			fallbackUsed = true
			return &modex.ExtractResult{Title: "fallback", ContentHTML: html}, nil
		},
	}

	result, err := c.Crawl(context.Background(), seed)
	require.NoError(t, err)

	assert.True(t, fallbackUsed)
	require.Len(t, result.Pages, 1)
	assert.Equal(t, "fallback", result.Pages[0].Title)
}

func TestCrawler_Crawl_saves_pages_to_store(t *testing.T) {
	t.Parallel()

	seed := "https://example.com/docs/"
	site := &testSite{
		pages: map[string]string{
			seed:                         "seed page",
			"https://example.com/docs/a": "page a",
		},
		links: map[string][]modex.DiscoveredLink{
			seed: {{URL: "https://example.com/docs/a", Text: "A"}},
		},
	}

	var saved []*modex.Page
	c := newTestCrawler(site)
	c.Pages = &mock.PageStore{
		CreatePageFn: func(ctx context.Context, page *modex.Page) error {
			saved = append(saved, page)
			return nil
		},
	}

	result, err := c.Crawl(context.Background(), seed)
	require.NoError(t, err)

	require.Len(t, saved, 2)
	assert.Equal(t, result.Pages, saved)
	assert.Equal(t, seed, saved[0].SeedURL)
	assert.NotEmpty(t, saved[0].ContentHash)
	assert.False(t, saved[0].FetchedAt.IsZero())
}

func TestCrawler_Crawl_rejects_invalid_seed_URL(t *testing.T) {
	t.Parallel()

	site := &testSite{pages: map[string]string{}}
	c := newTestCrawler(site)

	_, err := c.Crawl(context.Background(), "not a url")
	require.Error(t, err)
	assert.Equal(t, modex.EINVALID, modex.ErrorCode(err))
	assert.Empty(t, site.fetched, "no fetches should happen")
}

func TestCrawler_Crawl_respects_context_cancellation(t *testing.T) {
	t.Parallel()

	seed := "https://example.com/docs/"
	site := &testSite{
		pages: map[string]string{seed: "seed page"},
		links: map[string][]modex.DiscoveredLink{},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestCrawler(site)
	_, err := c.Crawl(ctx, seed)
	require.Error(t, err)
}

func TestConsolidate(t *testing.T) {
	t.Parallel()

	t.Run("joins page content with blank lines in order", func(t *testing.T) {
		t.Parallel()

		pages := []*modex.Page{
			{Content: "# Billing\n\nInvoices and payments."},
			{Content: "# Settings\n\nWorkspace configuration."},
		}

		got := crawl.Consolidate(pages)
		assert.Equal(t, "# Billing\n\nInvoices and payments.\n\n# Settings\n\nWorkspace configuration.", got)
	})

	t.Run("skips blank pages", func(t *testing.T) {
		t.Parallel()

		pages := []*modex.Page{
			{Content: "first"},
			{Content: "   \n  "},
			{Content: "second"},
		}

		got := crawl.Consolidate(pages)
		assert.Equal(t, "first\n\nsecond", got)
	})

	t.Run("empty input yields empty string", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", crawl.Consolidate(nil))
	})
}

func TestComputeHash(t *testing.T) {
	t.Parallel()

	h1 := crawl.ComputeHash("some content")
	h2 := crawl.ComputeHash("some content")
	h3 := crawl.ComputeHash("other content")

	assert.Equal(t, h1, h2, "hash should be deterministic")
	assert.NotEqual(t, h1, h3, "different content should hash differently")
	assert.NotEmpty(t, h1)
}
