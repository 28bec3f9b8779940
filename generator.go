package modex

import "context"

// Generator wraps a single request/response round trip with a text
// generation model.
type Generator interface {
	// Generate sends content to the model under the given system prompt and
	// returns the raw response text. Implementations request a structured
	// (JSON) response at temperature 0. Callers treat any error as an empty
	// response; no retries are performed anywhere in the pipeline.
	Generate(ctx context.Context, content string, systemPrompt string) (string, error)
}
