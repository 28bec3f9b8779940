// Package extract implements the two-pass module extraction pipeline:
// token-aware chunking, per-chunk raw extraction (Pass 1), and a single
// synthesis round that merges and deduplicates the raw results (Pass 2).
package extract

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/pulseai/modex"
)

// DefaultMaxInputTokens is the safe input ceiling for a single model
// request.
const DefaultMaxInputTokens = 120000

// Ensure Extractor implements modex.Extractor at compile time.
var _ modex.Extractor = (*Extractor)(nil)

// Extractor drives the two-pass extraction pipeline. Chunks are processed
// strictly sequentially; a failed model call degrades to an empty result for
// that chunk and is never retried.
type Extractor struct {
	Generator    modex.Generator
	TokenCounter modex.TokenCounter
	Logger       *slog.Logger

	// MaxInputTokens is the token budget for a single request. Both the
	// Pass-1 chunker and the Pass-2 size check use it.
	// Defaults to DefaultMaxInputTokens.
	MaxInputTokens int
}

// Extract converts consolidated documentation text into the final module
// list. Blank input returns an empty list without any model calls. If Pass 1
// yields nothing the pipeline aborts with an empty list. If the serialized
// Pass-1 results exceed the token budget, synthesis is skipped and the raw
// (non-deduplicated) list is returned as a degraded but non-fatal fallback.
func (e *Extractor) Extract(ctx context.Context, consolidatedText string) ([]modex.ModuleRecord, error) {
	logger := e.logger()

	if strings.TrimSpace(consolidatedText) == "" {
		logger.Warn("extractor received empty text, nothing to process")
		return []modex.ModuleRecord{}, nil
	}

	maxTokens := e.MaxInputTokens
	if maxTokens <= 0 {
		maxTokens = DefaultMaxInputTokens
	}

	logger.Info("starting pass 1: raw module extraction")
	raw := e.extractRawModules(ctx, consolidatedText, maxTokens)
	if len(raw) == 0 {
		logger.Warn("pass 1 did not yield any modules")
		return []modex.ModuleRecord{}, nil
	}

	logger.Info("starting pass 2: synthesizing and cleaning modules", "raw", len(raw))
	return e.synthesize(ctx, raw, maxTokens), nil
}

// extractRawModules chunks the input and runs the extraction prompt over
// each chunk in order, concatenating the parsed results.
func (e *Extractor) extractRawModules(ctx context.Context, text string, maxTokens int) []modex.ModuleRecord {
	logger := e.logger()

	chunks := ChunkText(text, e.TokenCounter, maxTokens)
	logger.Info("content split into chunks", "count", len(chunks))

	var raw []modex.ModuleRecord
	for i, chunk := range chunks {
		logger.Info("processing chunk", "chunk", i+1, "total", len(chunks))

		response, err := e.Generator.Generate(ctx, chunk, ExtractionPrompt)
		if err != nil {
			logger.Error("model call failed, treating chunk as empty",
				"chunk", i+1,
				"err", err,
			)
			continue
		}

		raw = append(raw, ParseModules(logger, response)...)
	}
	return raw
}

// synthesize serializes the raw records and runs the synthesis prompt over
// them in a single call. Records are aggregated, never mutated: the fallback
// returns the raw slice exactly as accumulated.
func (e *Extractor) synthesize(ctx context.Context, raw []modex.ModuleRecord, maxTokens int) []modex.ModuleRecord {
	logger := e.logger()

	serialized, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		logger.Error("failed to serialize raw modules, returning them unsynthesized", "err", err)
		return raw
	}

	if tokens := e.TokenCounter.Count(string(serialized)); tokens > maxTokens {
		logger.Warn("cannot perform synthesis pass: raw module data is too large, returning raw data",
			"tokens", tokens,
			"budget", maxTokens,
		)
		return raw
	}

	response, err := e.Generator.Generate(ctx, string(serialized), SynthesisPrompt)
	if err != nil {
		logger.Error("synthesis model call failed", "err", err)
		return nil
	}

	return ParseModules(logger, response)
}

func (e *Extractor) logger() *slog.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return slog.Default()
}
