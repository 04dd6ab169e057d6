package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"

	"voxnav/pkg/log"
)

// mockProvider is a configurable test provider
type mockProvider struct {
	name      string
	model     string
	failCount int            // fail this many calls before succeeding
	callCount int
	delay     time.Duration
	response  *TextResponse
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *TextRequest) (*TextResponse, error) {
	m.callCount++
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.callCount <= m.failCount {
		return nil, errors.New("mock provider error")
	}
	if m.response != nil {
		return m.response, nil
	}
	return &TextResponse{Text: "mock response", ProviderName: m.name, ModelName: m.model}, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.model }

// mockLogger discards all log output
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

var _ log.Logger = (*mockLogger)(nil)

func newTestManager(providers []Provider, cfg *Config) *Manager {
	if cfg == nil {
		cfg = &Config{
			FallbackEnabled: true,
			RetryAttempts:   1,
			RetryDelay:      time.Millisecond,
		}
	}
	return NewManager(providers, cfg, &mockLogger{})
}

func TestGenerateContent_FirstProviderSucceeds(t *testing.T) {
	p1 := &mockProvider{name: "openrouter", model: "m1"}
	p2 := &mockProvider{name: "gemini", model: "m2"}
	manager := newTestManager([]Provider{p1, p2}, nil)

	resp, err := manager.GenerateContent(context.Background(), &TextRequest{Prompt: "hello"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.ProviderName != "openrouter" {
		t.Errorf("Expected response from openrouter, got %s", resp.ProviderName)
	}
	if p2.callCount != 0 {
		t.Errorf("Expected second provider untouched, got %d calls", p2.callCount)
	}
}

func TestGenerateContent_FallsBackToSecondProvider(t *testing.T) {
	p1 := &mockProvider{name: "openrouter", model: "m1", failCount: 10}
	p2 := &mockProvider{name: "gemini", model: "m2"}
	manager := newTestManager([]Provider{p1, p2}, nil)

	resp, err := manager.GenerateContent(context.Background(), &TextRequest{Prompt: "hello"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if resp.ProviderName != "gemini" {
		t.Errorf("Expected fallback to gemini, got %s", resp.ProviderName)
	}
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	p1 := &mockProvider{name: "openrouter", model: "m1", failCount: 10}
	p2 := &mockProvider{name: "gemini", model: "m2", failCount: 10}
	manager := newTestManager([]Provider{p1, p2}, nil)

	_, err := manager.GenerateContent(context.Background(), &TextRequest{Prompt: "hello"})
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Errorf("Expected ErrAllProvidersFailed, got %v", err)
	}
}

func TestGenerateContent_FallbackDisabled(t *testing.T) {
	p1 := &mockProvider{name: "openrouter", model: "m1", failCount: 10}
	p2 := &mockProvider{name: "gemini", model: "m2"}
	manager := newTestManager([]Provider{p1, p2}, &Config{
		FallbackEnabled: false,
		RetryAttempts:   1,
	})

	_, err := manager.GenerateContent(context.Background(), &TextRequest{Prompt: "hello"})
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if p2.callCount != 0 {
		t.Errorf("Expected second provider untouched with fallback disabled, got %d calls", p2.callCount)
	}
}

func TestGenerateContent_RetriesBeforeFallback(t *testing.T) {
	p1 := &mockProvider{name: "openrouter", model: "m1", failCount: 2}
	manager := newTestManager([]Provider{p1}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      time.Millisecond,
	})

	resp, err := manager.GenerateContent(context.Background(), &TextRequest{Prompt: "hello"})
	if err != nil {
		t.Fatalf("Expected success on third attempt, got %v", err)
	}
	if p1.callCount != 3 {
		t.Errorf("Expected 3 attempts, got %d", p1.callCount)
	}
	if resp.Text != "mock response" {
		t.Errorf("Unexpected response text %q", resp.Text)
	}
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	p1 := &mockProvider{name: "openrouter", model: "m1", delay: 200 * time.Millisecond, failCount: 10}
	p2 := &mockProvider{name: "gemini", model: "m2"}
	manager := newTestManager([]Provider{p1, p2}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
		MaxTotalTimeout: 50 * time.Millisecond,
	})

	start := time.Now()
	_, err := manager.GenerateContent(context.Background(), &TextRequest{Prompt: "hello"})
	if err == nil {
		t.Fatal("Expected timeout error, got nil")
	}
	if elapsed := time.Since(start); elapsed > 150*time.Millisecond {
		t.Errorf("Expected chain to stop near the 50ms budget, took %v", elapsed)
	}
}

func TestGenerateContent_InvalidRequest(t *testing.T) {
	manager := newTestManager([]Provider{&mockProvider{name: "openrouter"}}, nil)

	_, err := manager.GenerateContent(context.Background(), &TextRequest{})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest, got %v", err)
	}
}

func TestGenerateContent_NoProviders(t *testing.T) {
	manager := newTestManager(nil, nil)

	_, err := manager.GenerateContent(context.Background(), &TextRequest{Prompt: "hello"})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("Expected ErrNoProvidersConfigured, got %v", err)
	}
}
