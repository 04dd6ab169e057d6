package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

func newClient(cfg Config) *client {
	return &client{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    cfg.BaseURL,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a chat completion request. The preferred model is
// tried first, then the rest of the free-model chain on rate limits,
// timeouts, or missing models.
func (c *client) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	model := req.Model
	if model == "" {
		model = c.model
	}

	models := make([]string, 0, len(FreeModels)+1)
	models = append(models, model)
	for _, m := range FreeModels {
		if m != model {
			models = append(models, m)
		}
	}

	var lastErr error
	for i, tryModel := range models {
		attempt := *req
		attempt.Model = tryModel

		resp, err := c.callAPI(ctx, &attempt)
		if err == nil {
			if i > 0 {
				resp.Model = tryModel
			}
			return resp, nil
		}
		lastErr = err

		if !retryable(err) {
			return nil, err
		}

		select {
		case <-time.After(500 * time.Millisecond):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return nil, fmt.Errorf("openrouter: all %d models unavailable: %w", len(models), lastErr)
}

// Model returns the preferred model
func (c *client) Model() string {
	return c.model
}

func (c *client) callAPI(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("openrouter: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("openrouter: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("HTTP-Referer", RefererHeader)
	httpReq.Header.Set("X-Title", TitleHeader)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openrouter: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openrouter: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error.Message != "" {
			return nil, fmt.Errorf("openrouter: API error %d: %s", resp.StatusCode, errResp.Error.Message)
		}
		return nil, fmt.Errorf("openrouter: API error %d: %s", resp.StatusCode, string(respBody))
	}

	var result Response
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("openrouter: failed to parse response: %w", err)
	}

	return &result, nil
}

// retryable reports whether the next model in the chain should be tried.
func retryable(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, code := range []string{"429", "408", "404"} {
		if strings.Contains(msg, code) {
			return true
		}
	}
	return strings.Contains(msg, "rate") || strings.Contains(msg, "timeout")
}
