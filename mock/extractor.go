package mock

import "github.com/pulseai/modex"

var _ modex.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of modex.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*modex.ExtractResult, error)
}

func (e *ContentExtractor) Extract(html string) (*modex.ExtractResult, error) {
	return e.ExtractFn(html)
}
