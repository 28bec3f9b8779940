package mock

import "github.com/pulseai/modex"

var _ modex.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of modex.TokenCounter.
type TokenCounter struct {
	CountFn func(text string) int
}

func (tc *TokenCounter) Count(text string) int {
	return tc.CountFn(text)
}
