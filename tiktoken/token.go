// Package tiktoken provides a generic fallback token counter using the
// cl100k_base encoding. It approximates token counts for any model when a
// model-specific tokenizer is unavailable.
package tiktoken

import (
	"log/slog"

	"github.com/pkoukk/tiktoken-go"
	"github.com/pulseai/modex"
)

// fallbackEncoding is a reasonable approximation across providers.
const fallbackEncoding = "cl100k_base"

var _ modex.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens with the generic cl100k_base encoding.
type TokenCounter struct {
	enc *tiktoken.Tiktoken
}

// NewTokenCounter creates the fallback TokenCounter.
func NewTokenCounter() (*TokenCounter, error) {
	enc, err := tiktoken.GetEncoding(fallbackEncoding)
	if err != nil {
		return nil, modex.Errorf(modex.ECONFIG, "failed to load %s encoding: %v", fallbackEncoding, err)
	}
	return &TokenCounter{enc: enc}, nil
}

// NewFallbackFor returns a TokenCounter for a model the specific tokenizer
// does not know, logging the downgrade.
func NewFallbackFor(model string, logger *slog.Logger) (*TokenCounter, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("no model-specific tokenizer, falling back to generic encoding",
		"model", model,
		"encoding", fallbackEncoding,
	)
	return NewTokenCounter()
}

// Count returns the number of tokens in text.
func (tc *TokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}
	return len(tc.enc.Encode(text, nil, nil))
}
