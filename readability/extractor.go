// Package readability provides a content extractor backed by the
// readability algorithm. It serves as a fallback when heuristic cleaning
// finds no main content.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/pulseai/modex"
)

// Ensure Extractor implements modex.ContentExtractor at compile time.
var _ modex.ContentExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*modex.ExtractResult, error) {
	if rawHTML == "" {
		return nil, modex.Errorf(modex.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &modex.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
