package mock

import "github.com/pulseai/modex"

var _ modex.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of modex.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html, baseURL string) ([]modex.DiscoveredLink, error)
}

func (e *LinkExtractor) ExtractLinks(html, baseURL string) ([]modex.DiscoveredLink, error) {
	return e.ExtractLinksFn(html, baseURL)
}
