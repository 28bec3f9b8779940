package main

import (
	"fmt"

	"github.com/pulseai/modex"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	// A fresh crawl replaces any previously cached pages for this seed.
	if err := deps.Pages.DeletePagesBySeed(deps.Ctx, c.URL); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", modex.ErrorMessage(err))
		return err
	}

	result, err := deps.Crawler.Crawl(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", modex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Crawled %d pages (%d failed, %d duplicates)\n",
		result.Fetched, result.Failed, result.Duplicates)
	return nil
}
