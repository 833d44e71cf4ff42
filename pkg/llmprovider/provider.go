package llmprovider

import "context"

// Provider is a text-in / text-out LLM backend. All planner prompts expect a
// single JSON payload back, so the normalized surface is deliberately small.
type Provider interface {
	// Generate sends a prompt and returns the raw response text.
	Generate(ctx context.Context, req *Request) (string, error)

	// Name returns the provider name (e.g. "gemini", "deepseek").
	Name() string

	// Model returns the model being used.
	Model() string
}

// Request is a normalized generation request.
type Request struct {
	Prompt      string
	Temperature float64
	MaxTokens   int
}
