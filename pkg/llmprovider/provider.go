package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *TextRequest) (*TextResponse, error)

	// Name returns the provider name (e.g., "openrouter", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// TextRequest represents a normalized text generation request
type TextRequest struct {
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// TextResponse represents a normalized text generation response
type TextResponse struct {
	Text         string
	ProviderName string
	ModelName    string
}
