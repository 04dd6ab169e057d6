package openrouter

import "context"

// IOpenRouter defines the interface for the OpenRouter chat client.
// Implementations are safe for concurrent use.
type IOpenRouter interface {
	// GenerateContent sends a chat completion request, walking the free-model
	// fallback chain when the preferred model is unavailable.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model returns the preferred model
	Model() string
}

// New creates a new OpenRouter client with the given configuration
func New(cfg Config) (IOpenRouter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(cfg), nil
}
