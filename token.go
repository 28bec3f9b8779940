package modex

// TokenCounter counts model-input tokens in text.
type TokenCounter interface {
	// Count returns the number of tokens the text consumes. It never fails:
	// any input, including the empty string, yields a count ≥ 0.
	Count(text string) int
}
