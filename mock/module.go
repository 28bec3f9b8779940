package mock

import (
	"context"

	"github.com/pulseai/modex"
)

var _ modex.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of modex.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, consolidatedText string) ([]modex.ModuleRecord, error)
}

func (e *Extractor) Extract(ctx context.Context, consolidatedText string) ([]modex.ModuleRecord, error) {
	return e.ExtractFn(ctx, consolidatedText)
}
