package modex

// DiscoveredLink represents an in-page link with its anchor text.
// The anchor text feeds the crawl relevance filter.
type DiscoveredLink struct {
	URL  string
	Text string
}

// LinkExtractor extracts same-host links from HTML.
type LinkExtractor interface {
	// ExtractLinks parses HTML and returns discovered links in document
	// order, resolved against baseURL, deduplicated, with external hosts
	// filtered out.
	ExtractLinks(html string, baseURL string) ([]DiscoveredLink, error)
}
