package ollama

import "time"

const (
	// DefaultBaseURL is the default local Ollama endpoint
	DefaultBaseURL = "http://localhost:11434"

	// DefaultModel is the default local model
	DefaultModel = "llama3.2"

	// DefaultTimeout is generous because local inference on CPU is slow
	DefaultTimeout = 120 * time.Second
)
