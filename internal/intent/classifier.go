package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"voxnav/internal/language"
	"voxnav/pkg/llmprovider"
	"voxnav/pkg/log"
)

// Generator produces text from a prompt. Satisfied by llmprovider.Manager.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.TextRequest) (*llmprovider.TextResponse, error)
}

// Classifier maps utterances to intents. The model does the heavy
// lifting; a local keyword pass keeps classification alive when the
// model is down or returns garbage.
type Classifier struct {
	llm    Generator
	logger log.Logger
}

// NewClassifier creates an intent classifier
func NewClassifier(llm Generator, logger log.Logger) *Classifier {
	return &Classifier{llm: llm, logger: logger}
}

// Classify determines the intent of an utterance. It never fails: model
// or parse errors degrade to keyword classification with lower confidence.
func (c *Classifier) Classify(ctx context.Context, utterance string, hint *PageHint) Result {
	detected := language.Detect(utterance)

	prompt := classifyPrompt
	if hint != nil && (hint.URL != "" || hint.PageTitle != "") {
		prompt += fmt.Sprintf("\nContext: URL=%s, Page=%s\n", orNA(hint.URL), orNA(hint.PageTitle))
	}
	prompt += fmt.Sprintf("\nInput: %q", utterance)

	resp, err := c.llm.GenerateContent(ctx, &llmprovider.TextRequest{
		Prompt:      prompt,
		Temperature: 0.1,
		MaxTokens:   300,
	})
	if err != nil {
		c.logger.Warn(ctx, "intent classification call failed", "error", err.Error())
		return c.fallback(utterance, detected.Language, 0.5, "")
	}

	raw := ExtractJSONObject(StripFences(resp.Text))

	var parsed classifyResponse
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		c.logger.Warn(ctx, "intent classification returned unparseable JSON", "error", err.Error())
		return c.fallback(utterance, detected.Language, 0.6, raw)
	}

	lang := detected.Language
	if parsed.LanguageDetected != "" {
		lang = language.Parse(parsed.LanguageDetected)
	}

	confidence := parsed.Confidence
	if confidence == 0 {
		confidence = 0.5
	}

	return Result{
		Intent:      parseIntent(parsed.Intent),
		Confidence:  confidence,
		SubIntent:   parsed.SubIntent,
		Entities:    stringifyEntities(parsed.Entities),
		Utterance:   utterance,
		Language:    lang,
		RawResponse: raw,
	}
}

// fallback runs the local keyword classifier. matchedConfidence applies
// when a keyword match is found; no match yields UNKNOWN at 0.0.
func (c *Classifier) fallback(utterance string, lang language.Language, matchedConfidence float64, raw string) Result {
	result := Result{
		Intent:      Unknown,
		Utterance:   utterance,
		Language:    lang,
		RawResponse: raw,
	}

	if quick, ok := quickClassify(utterance); ok {
		result.Intent = quick
		result.Confidence = matchedConfidence
	}

	return result
}

// quickClassify scores intents by keyword hits. Only a clear winner
// (score at least 2) is trusted.
func quickClassify(utterance string) (Intent, bool) {
	text := strings.ToLower(utterance)

	var best Intent
	bestScore := 0
	for intent, keywords := range intentKeywords {
		score := 0
		for _, kw := range keywords {
			if strings.Contains(text, kw) {
				score++
			}
		}
		if score > bestScore {
			best = intent
			bestScore = score
		}
	}

	if bestScore >= 2 {
		return best, true
	}
	return Unknown, false
}

// StripFences removes a surrounding Markdown code fence if present
func StripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	if idx := strings.Index(text, "\n"); idx >= 0 {
		text = text[idx+1:]
	} else {
		text = text[3:]
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

// ExtractJSONObject returns the first balanced {...} object in text,
// or the input unchanged when no balanced object is found.
func ExtractJSONObject(text string) string {
	start := strings.Index(text, "{")
	if start < 0 {
		return text
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1]
			}
		}
	}

	return text
}

func stringifyEntities(entities map[string]any) map[string]string {
	if len(entities) == 0 {
		return map[string]string{}
	}
	out := make(map[string]string, len(entities))
	for k, v := range entities {
		switch val := v.(type) {
		case string:
			out[k] = val
		case nil:
			// unmentioned slot, skip
		default:
			out[k] = fmt.Sprint(val)
		}
	}
	return out
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
