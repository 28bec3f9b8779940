package main

import (
	"fmt"

	"github.com/pulseai/modex"
)

// Run executes the pages command.
func (c *PagesCmd) Run(deps *Dependencies) error {
	pages, err := deps.Pages.FindPagesBySeed(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", modex.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintf(deps.Stdout, "No cached pages for %q\n", c.URL)
		return nil
	}

	for _, page := range pages {
		title := page.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(deps.Stdout, "%3d  depth=%d  %s  %s\n", page.Position, page.Depth, page.URL, title)
		if c.Full {
			fmt.Fprintln(deps.Stdout, page.Content)
			fmt.Fprintln(deps.Stdout)
		}
	}

	return nil
}
