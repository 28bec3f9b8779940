// Package crawl provides documentation crawling orchestration.
// It coordinates sitemap discovery, breadth-first link following, content
// extraction, and storage of documentation pages.
package crawl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/pulseai/modex"
	"golang.org/x/sync/errgroup"
)

// Crawler defaults.
const (
	DefaultMaxDepth    = 2
	DefaultConcurrency = 10

	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
	// maxCrawlURLs limits the number of URLs processed to prevent runaway crawls.
	maxCrawlURLs = 1000
)

// Crawler walks a documentation site breadth-first from a seed URL and turns
// each relevant page into structured text. Same-host links pass through the
// heuristic relevance filter before being queued; traversal stops at MaxDepth.
type Crawler struct {
	Fetcher   modex.Fetcher
	Extractor modex.ContentExtractor
	Fallback  modex.ContentExtractor // optional, tried when Extractor finds no content
	Converter modex.Converter
	Links     modex.LinkExtractor
	Sitemaps  modex.SitemapService // optional, seeds the frontier when available
	Limiter   modex.DomainLimiter  // optional
	Pages     modex.PageStore      // optional, persists crawled pages
	Logger    *slog.Logger

	MaxDepth    int
	Concurrency int
}

// Result holds the outcome of a crawl operation.
type Result struct {
	Pages      []*modex.Page
	Fetched    int
	Failed     int
	Duplicates int
}

// fetchResult holds the outcome of fetching a single URL.
type fetchResult struct {
	html string
	err  error
}

// Crawl walks the site at seedURL and returns the pages it collected, in
// visitation order. Fetch and preprocessing failures for individual pages are
// logged and counted, not returned; the error return covers an invalid seed
// URL and context cancellation.
func (c *Crawler) Crawl(ctx context.Context, seedURL string) (*Result, error) {
	if err := ValidateSeedURL(seedURL); err != nil {
		return nil, err
	}

	seed, err := url.Parse(seedURL)
	if err != nil {
		return nil, modex.Errorf(modex.EINVALID, "invalid seed URL: %v", err)
	}

	logger := c.logger()

	maxDepth := c.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(seedURL, 0)

	// Seed the frontier from the site's sitemaps when available. Sitemap
	// URLs enter at depth 1 so their links still get followed.
	if c.Sitemaps != nil {
		urls, err := c.Sitemaps.DiscoverURLs(ctx, seedURL)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			logger.Warn("sitemap discovery failed, falling back to link following", "url", seedURL, "error", err)
		}
		for _, u := range urls {
			if IsRelevantLink(modex.DiscoveredLink{URL: u}) {
				frontier.Push(u, 1)
			}
		}
	}

	result := &Result{}
	seenHashes := make(map[string]bool)
	processed := 0

	for frontier.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		// Drain the current level. FIFO ordering means everything queued
		// now is at most one depth apart.
		var level []queuedURL
		for {
			u, depth, ok := frontier.Pop()
			if !ok {
				break
			}
			if processed >= maxCrawlURLs {
				continue
			}
			processed++
			level = append(level, queuedURL{url: u, depth: depth})
		}
		if len(level) == 0 {
			break
		}

		fetched := make([]fetchResult, len(level))

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(concurrency)
		for i, item := range level {
			g.Go(func() error {
				if c.Limiter != nil {
					host := item.url
					if parsed, err := url.Parse(item.url); err == nil {
						host = parsed.Host
					}
					if err := c.Limiter.Wait(gctx, host); err != nil {
						return err
					}
				}
				html, err := c.Fetcher.Fetch(gctx, item.url)
				fetched[i] = fetchResult{html: html, err: err}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			// Only rate limiter context errors propagate here.
			return nil, err
		}

		// Process fetched pages in queue order so page positions and link
		// discovery stay deterministic.
		for i, item := range level {
			if fetched[i].err != nil {
				logger.Warn("fetch failed", "url", item.url, "error", fetched[i].err)
				result.Failed++
				continue
			}
			html := fetched[i].html

			if item.depth < maxDepth {
				c.discoverLinks(frontier, html, item.url, item.depth, seed.Host)
			}

			page, err := c.processPage(item.url, html)
			if err != nil {
				logger.Warn("preprocessing failed", "url", item.url, "error", err)
				result.Failed++
				continue
			}

			if seenHashes[page.ContentHash] {
				logger.Debug("skipping duplicate content", "url", item.url)
				result.Duplicates++
				continue
			}
			seenHashes[page.ContentHash] = true

			page.SeedURL = seedURL
			page.Depth = item.depth
			page.Position = len(result.Pages)
			page.FetchedAt = time.Now().UTC()

			if c.Pages != nil {
				if err := c.Pages.CreatePage(ctx, page); err != nil {
					logger.Warn("saving page failed", "url", item.url, "error", err)
				}
			}

			result.Pages = append(result.Pages, page)
			result.Fetched++
		}
	}

	logger.Info("crawl finished",
		"seed", seedURL,
		"pages", result.Fetched,
		"failed", result.Failed,
		"duplicates", result.Duplicates,
	)

	return result, nil
}

// discoverLinks extracts links from a page and queues the relevant same-host
// ones at the next depth.
func (c *Crawler) discoverLinks(frontier *Frontier, html, pageURL string, depth int, seedHost string) {
	if c.Links == nil {
		return
	}
	links, err := c.Links.ExtractLinks(html, pageURL)
	if err != nil {
		c.logger().Debug("link extraction failed", "url", pageURL, "error", err)
		return
	}
	for _, link := range links {
		parsed, err := url.Parse(link.URL)
		if err != nil || parsed.Host != seedHost {
			continue
		}
		if !IsRelevantLink(link) {
			continue
		}
		frontier.Push(link.URL, depth+1)
	}
}

// processPage runs a fetched page through content extraction and markdown
// conversion.
func (c *Crawler) processPage(pageURL, html string) (*modex.Page, error) {
	extracted, err := c.Extractor.Extract(html)
	if err != nil && c.Fallback != nil && modex.ErrorCode(err) == modex.ENOTFOUND {
		extracted, err = c.Fallback.Extract(html)
	}
	if err != nil {
		return nil, err
	}

	markdown, err := c.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, err
	}

	return &modex.Page{
		URL:         pageURL,
		Title:       extracted.Title,
		Content:     markdown,
		ContentHash: ComputeHash(markdown),
	}, nil
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// Consolidate joins the structured text of pages with a blank-line separator,
// in visitation order. This is the input contract for module extraction.
func Consolidate(pages []*modex.Page) string {
	parts := make([]string, 0, len(pages))
	for _, page := range pages {
		if strings.TrimSpace(page.Content) == "" {
			continue
		}
		parts = append(parts, page.Content)
	}
	return strings.Join(parts, "\n\n")
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
