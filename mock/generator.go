package mock

import (
	"context"

	"github.com/pulseai/modex"
)

var _ modex.Generator = (*Generator)(nil)

// Generator is a mock implementation of modex.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, content, systemPrompt string) (string, error)
}

func (g *Generator) Generate(ctx context.Context, content, systemPrompt string) (string, error) {
	return g.GenerateFn(ctx, content, systemPrompt)
}
