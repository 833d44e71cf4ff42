package llmprovider

import (
	"context"

	"dayflow/pkg/deepseek"
	"dayflow/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to the Provider interface.
type GeminiAdapter struct {
	client *gemini.Client
}

// NewGeminiAdapter creates a new Gemini adapter.
func NewGeminiAdapter(client *gemini.Client) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// Generate implements Provider.
func (a *GeminiAdapter) Generate(ctx context.Context, req *Request) (string, error) {
	resp, err := a.client.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: req.Prompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxTokens,
		},
	})
	if err != nil {
		return "", &ProviderError{Provider: a.Name(), Err: err}
	}

	text := resp.Text()
	if text == "" {
		return "", &ProviderError{Provider: a.Name(), Err: ErrEmptyResponse}
	}
	return text, nil
}

// Name returns the provider name.
func (a *GeminiAdapter) Name() string { return "gemini" }

// Model returns the model name.
func (a *GeminiAdapter) Model() string { return a.client.Model() }

// DeepSeekAdapter adapts pkg/deepseek to the Provider interface.
type DeepSeekAdapter struct {
	client *deepseek.Client
}

// NewDeepSeekAdapter creates a new DeepSeek adapter.
func NewDeepSeekAdapter(client *deepseek.Client) *DeepSeekAdapter {
	return &DeepSeekAdapter{client: client}
}

// Generate implements Provider.
func (a *DeepSeekAdapter) Generate(ctx context.Context, req *Request) (string, error) {
	resp, err := a.client.GenerateContent(ctx, &deepseek.Request{
		Messages: []deepseek.Message{
			{Role: "user", Content: req.Prompt},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return "", &ProviderError{Provider: a.Name(), Err: err}
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", &ProviderError{Provider: a.Name(), Err: ErrEmptyResponse}
	}
	return resp.Choices[0].Message.Content, nil
}

// Name returns the provider name.
func (a *DeepSeekAdapter) Name() string { return "deepseek" }

// Model returns the model name.
func (a *DeepSeekAdapter) Model() string { return a.client.Model() }
