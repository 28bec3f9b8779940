package modex

// ExtractResult holds the main content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title.
	Title string

	// ContentHTML is the main content as clean HTML with boilerplate
	// (nav, footer, sidebar, scripts, forms) removed.
	ContentHTML string
}

// ContentExtractor isolates main content from HTML pages, removing
// boilerplate.
type ContentExtractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}
