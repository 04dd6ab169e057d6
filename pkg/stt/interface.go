package stt

import "context"

// Provider transcribes short audio clips into text
type Provider interface {
	// Transcribe recognizes speech in audio. language is a BCP-47 code
	// such as "hi-IN" or "en-IN"; empty falls back to the provider default.
	Transcribe(ctx context.Context, audio []byte, language string) (Result, error)

	Close() error
}

// Result is a transcription outcome
type Result struct {
	Text       string
	Language   string
	Confidence float64
}
