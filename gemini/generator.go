// Package gemini implements the model-facing boundaries using Google Gemini:
// the generation round trip and model-specific token counting.
package gemini

import (
	"context"

	"github.com/pulseai/modex"
	"google.golang.org/genai"
)

// DefaultModel is the generation model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Generator implements modex.Generator at compile time.
var _ modex.Generator = (*Generator)(nil)

// Generator implements modex.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
	model  string
}

// NewGenerator creates a new Generator for the given model.
// An empty model defaults to DefaultModel.
func NewGenerator(client *genai.Client, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{client: client, model: model}
}

// NewClient connects to the Gemini API. The API key is required: a missing
// key fails here, at construction, rather than on the first generation call.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, modex.Errorf(modex.ECONFIG, "Gemini API key required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, modex.Errorf(modex.ECONFIG, "failed to connect to Gemini API: %v", err)
	}
	return client, nil
}

// Generate sends content to the model under the given system prompt and
// returns the raw response text.
func (g *Generator) Generate(ctx context.Context, content string, systemPrompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: content}},
		}},
		BuildConfig(systemPrompt),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", modex.Errorf(modex.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for extraction calls:
// temperature 0 for determinism and a JSON-constrained response.
func BuildConfig(systemPrompt string) *genai.GenerateContentConfig {
	temp := float32(0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}
