package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pulseai/modex"
)

// Ensure LoggingGenerator implements modex.Generator.
var _ modex.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with logging of each model call.
type LoggingGenerator struct {
	next   modex.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next modex.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the operation.
func (g *LoggingGenerator) Generate(ctx context.Context, content, systemPrompt string) (response string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate",
			"input_bytes", len(content),
			"output_bytes", len(response),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, content, systemPrompt)
}
