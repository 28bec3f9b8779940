package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pulseai/modex"
	"github.com/pulseai/modex/crawl"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	pages, err := c.collectPages(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", modex.ErrorMessage(err))
		return err
	}
	if len(pages) == 0 {
		fmt.Fprintln(deps.Stderr, "no pages collected; nothing to extract")
		return nil
	}

	consolidated := crawl.Consolidate(pages)

	records, err := deps.Extractor.Extract(deps.Ctx, consolidated)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", modex.ErrorMessage(err))
		return err
	}

	out, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	if c.Output != "" {
		if err := os.WriteFile(c.Output, append(out, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Fprintf(deps.Stdout, "Wrote %d modules to %s\n", len(records), c.Output)
		return nil
	}

	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}

// collectPages either reuses cached pages or crawls the site fresh.
func (c *ExtractCmd) collectPages(deps *Dependencies) ([]*modex.Page, error) {
	if c.Cached {
		pages, err := deps.Pages.FindPagesBySeed(deps.Ctx, c.URL)
		if err != nil {
			return nil, err
		}
		if len(pages) == 0 {
			return nil, modex.Errorf(modex.ENOTFOUND, "no cached pages for %q; run without --cached first", c.URL)
		}
		return pages, nil
	}

	// A fresh crawl replaces any previously cached pages for this seed.
	if err := deps.Pages.DeletePagesBySeed(deps.Ctx, c.URL); err != nil {
		return nil, err
	}

	result, err := deps.Crawler.Crawl(deps.Ctx, c.URL)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(deps.Stderr, "Crawled %d pages (%d failed, %d duplicates)\n",
		result.Fetched, result.Failed, result.Duplicates)
	return result.Pages, nil
}
