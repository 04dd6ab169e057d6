package llmprovider

import (
	"context"
	"fmt"

	"voxnav/pkg/gemini"
	"voxnav/pkg/ollama"
	"voxnav/pkg/openrouter"
)

// OpenRouterAdapter adapts the OpenRouter client to the Provider interface
type OpenRouterAdapter struct {
	client openrouter.IOpenRouter
}

// NewOpenRouterAdapter creates a new OpenRouter adapter
func NewOpenRouterAdapter(client openrouter.IOpenRouter) *OpenRouterAdapter {
	return &OpenRouterAdapter{client: client}
}

func (a *OpenRouterAdapter) GenerateContent(ctx context.Context, req *TextRequest) (*TextResponse, error) {
	messages := make([]openrouter.Message, 0, 2)
	if req.System != "" {
		messages = append(messages, openrouter.Message{Role: "system", Content: req.System})
	}
	messages = append(messages, openrouter.Message{Role: "user", Content: req.Prompt})

	resp, err := a.client.GenerateContent(ctx, &openrouter.Request{
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openrouter: response has no choices")
	}

	model := resp.Model
	if model == "" {
		model = a.client.Model()
	}

	return &TextResponse{
		Text:         resp.Choices[0].Message.Content,
		ProviderName: a.Name(),
		ModelName:    model,
	}, nil
}

func (a *OpenRouterAdapter) Name() string {
	return "openrouter"
}

func (a *OpenRouterAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts the Gemini client to the Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *TextRequest) (*TextResponse, error) {
	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: req.System,
		Messages:          []gemini.Message{{Role: "user", Text: req.Prompt}},
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &TextResponse{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
	}, nil
}

func (a *GeminiAdapter) Name() string {
	return "gemini"
}

func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// OllamaAdapter adapts the local Ollama client to the Provider interface
type OllamaAdapter struct {
	client ollama.IOllama
}

// NewOllamaAdapter creates a new Ollama adapter
func NewOllamaAdapter(client ollama.IOllama) *OllamaAdapter {
	return &OllamaAdapter{client: client}
}

func (a *OllamaAdapter) GenerateContent(ctx context.Context, req *TextRequest) (*TextResponse, error) {
	resp, err := a.client.GenerateContent(ctx, &ollama.Request{
		System:      req.System,
		Prompt:      req.Prompt,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, err
	}

	return &TextResponse{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
	}, nil
}

func (a *OllamaAdapter) Name() string {
	return "ollama"
}

func (a *OllamaAdapter) Model() string {
	return a.client.Model()
}
