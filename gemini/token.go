package gemini

import (
	"log/slog"

	"github.com/pulseai/modex"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ modex.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens using the local Gemini tokenizer for a
// specific model. Construction fails for models the local tokenizer does
// not support; callers fall back to a generic encoding in that case.
type TokenCounter struct {
	tok    *tokenizer.LocalTokenizer
	logger *slog.Logger
}

// NewTokenCounter creates a new TokenCounter for the given model.
func NewTokenCounter(model string, logger *slog.Logger) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, modex.Errorf(modex.ECONFIG, "no local tokenizer for model %q: %v", model, err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TokenCounter{tok: tok, logger: logger}, nil
}

// Count returns the number of tokens in text. Counting failures are logged
// and reported as zero so callers never have to handle an error.
func (tc *TokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}

	contents := []*genai.Content{
		genai.NewContentFromText(text, "user"),
	}

	result, err := tc.tok.CountTokens(contents, nil)
	if err != nil {
		tc.logger.Error("token counting failed", "err", err)
		return 0
	}

	return int(result.TotalTokens)
}
