package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/pulseai/modex"
	"github.com/pulseai/modex/crawl"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Pages     modex.PageStore
	Sitemaps  modex.SitemapService
	Crawler   *crawl.Crawler
	Extractor modex.Extractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" default:"withargs" help:"Crawl a documentation site and extract its module catalogue"`
	Crawl   CrawlCmd   `cmd:"" help:"Crawl a documentation site and cache its pages"`
	Pages   PagesCmd   `cmd:"" help:"List cached pages for a seed URL"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL         string  `arg:"" help:"Documentation URL to extract from"`
	Depth       int     `short:"d" default:"2" help:"Maximum crawl depth"`
	Rate        float64 `short:"r" default:"1" help:"Requests per second per domain"`
	Concurrency int     `short:"c" default:"10" help:"Concurrent fetch limit"`
	MaxTokens   int     `default:"120000" help:"Model input token budget per call"`
	Model       string  `short:"m" help:"Model to use for extraction"`
	Cached      bool    `help:"Reuse cached pages instead of recrawling"`
	Output      string  `short:"o" help:"Write the catalogue JSON to a file instead of stdout"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL         string  `arg:"" help:"Documentation URL to crawl"`
	Depth       int     `short:"d" default:"2" help:"Maximum crawl depth"`
	Rate        float64 `short:"r" default:"1" help:"Requests per second per domain"`
	Concurrency int     `short:"c" default:"10" help:"Concurrent fetch limit"`
}

// PagesCmd is the "pages" subcommand.
type PagesCmd struct {
	URL  string `arg:"" help:"Seed URL the pages were crawled from"`
	Full bool   `help:"Show full page content"`
}
