package slots

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"voxnav/internal/intent"
	"voxnav/internal/language"
	"voxnav/internal/session"
	"voxnav/pkg/datemath"
	"voxnav/pkg/llmprovider"
	"voxnav/pkg/log"
)

// DefaultMaxAttempts bounds how many failed extraction turns a session
// survives before it is abandoned
const DefaultMaxAttempts = 5

// Filler runs the multi-turn slot gathering loop. Extracted values
// accumulate in the per-user session aggregate until every required
// slot is filled.
type Filler struct {
	llm         intent.Generator
	store       session.Store
	dates       *datemath.Parser
	logger      log.Logger
	maxAttempts int
}

// NewFiller creates a slot filler. maxAttempts <= 0 falls back to
// DefaultMaxAttempts.
func NewFiller(llm intent.Generator, store session.Store, dates *datemath.Parser, maxAttempts int, logger log.Logger) *Filler {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Filler{
		llm:         llm,
		store:       store,
		dates:       dates,
		logger:      logger,
		maxAttempts: maxAttempts,
	}
}

// ExtractSlots processes one user turn against the slot schema for the
// given intent. Extraction failures are swallowed: prior progress is
// kept and the turn counts against the attempts budget.
func (f *Filler) ExtractSlots(ctx context.Context, userID, utterance, intentName, subIntent string, lang language.Language) SlotResult {
	schema, ok := GetSchema(intentName, subIntent)
	if !ok {
		// no slot gating for this intent
		return SlotResult{Status: StatusComplete, FilledSlots: map[string]string{}, MissingSlots: []string{}}
	}

	sess, found := f.store.Get(userID)
	if !found {
		sess = session.New(userID)
		sess.Intent = intentName
		sess.SubIntent = subIntent
	}

	extracted, err := f.callExtraction(ctx, utterance, schema, sess.FilledSlots)
	if err != nil {
		f.logger.Warn(ctx, "slot extraction failed, keeping prior slots",
			"user_id", userID, "error", err.Error())
		sess.Attempts++
		if sess.Attempts > f.maxAttempts {
			f.store.Delete(userID)
			return SlotResult{
				Status:       StatusFailed,
				FilledSlots:  sess.FilledSlots,
				MissingSlots: missingSlots(schema, sess.FilledSlots),
				Attempts:     sess.Attempts,
			}
		}
	} else {
		sess.MergeSlots(extracted)
		sess.FilledSlots = f.dates.NormalizeSlots(sess.FilledSlots, time.Now())
	}

	missing := missingSlots(schema, sess.FilledSlots)

	if len(missing) == 0 {
		f.store.Delete(userID)
		return SlotResult{
			Status:       StatusComplete,
			FilledSlots:  sess.FilledSlots,
			MissingSlots: []string{},
			Attempts:     sess.Attempts,
		}
	}

	next := missing[0]
	sess.AwaitingSlot = next
	f.store.Put(userID, sess)

	return SlotResult{
		Status:       StatusIncomplete,
		FilledSlots:  sess.FilledSlots,
		MissingSlots: missing,
		NextSlot:     next,
		NextQuestion: question(schema, next, lang),
		Attempts:     sess.Attempts,
	}
}

// callExtraction asks the model to pull slot values out of the utterance
func (f *Filler) callExtraction(ctx context.Context, utterance string, schema Schema, filled map[string]string) (map[string]string, error) {
	resp, err := f.llm.GenerateContent(ctx, &llmprovider.TextRequest{
		Prompt:      extractionPrompt(utterance, schema, filled),
		Temperature: 0.1,
		MaxTokens:   300,
	})
	if err != nil {
		return nil, err
	}

	raw := intent.ExtractJSONObject(intent.StripFences(resp.Text))

	var extracted map[string]any
	if err := json.Unmarshal([]byte(raw), &extracted); err != nil {
		return nil, fmt.Errorf("unparseable extraction response: %w", err)
	}

	out := make(map[string]string, len(extracted))
	for name, value := range extracted {
		if s, ok := value.(string); ok {
			out[name] = s
		} else if value != nil {
			out[name] = fmt.Sprint(value)
		}
	}
	return out, nil
}

func extractionPrompt(utterance string, schema Schema, filled map[string]string) string {
	snapshot, _ := json.Marshal(filled)
	if filled == nil {
		snapshot = []byte("{}")
	}

	return fmt.Sprintf(`Extract information from the user's message to fill the following slots.

REQUIRED SLOTS: %s
OPTIONAL SLOTS: %s

ALREADY FILLED: %s

USER MESSAGE: %q

INSTRUCTIONS:
1. Extract only values explicitly mentioned by the user
2. Normalize dates (e.g., "tomorrow" -> actual date, "next Monday" -> actual date)
3. Keep location names as-is (in original language/script)
4. Return null for slots not mentioned

Respond with valid JSON only:
{"slot_name": "value or null", ...}`,
		strings.Join(schema.Required, ", "),
		strings.Join(schema.Optional, ", "),
		snapshot,
		utterance)
}

// missingSlots lists required slots that are absent or empty, in schema order
func missingSlots(schema Schema, filled map[string]string) []string {
	missing := make([]string, 0, len(schema.Required))
	for _, name := range schema.Required {
		if filled[name] == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// question picks the localized question for a slot, falling back to
// English and then to a generic ask.
func question(schema Schema, slot string, lang language.Language) string {
	prompts, ok := schema.Prompts[slot]
	if !ok {
		return fmt.Sprintf("Please provide %s", slot)
	}

	var q string
	switch lang {
	case language.Hindi:
		q = prompts.Hi
	case language.Hinglish:
		q = prompts.Hinglish
	}
	if q == "" {
		q = prompts.En
	}
	if q == "" {
		q = fmt.Sprintf("Please provide %s", slot)
	}
	return q
}

// ClearSession drops a user's slot filling session
func (f *Filler) ClearSession(userID string) {
	f.store.Delete(userID)
}

// GetSession returns the current session aggregate for a user
func (f *Filler) GetSession(userID string) (*session.Session, bool) {
	return f.store.Get(userID)
}

// HasActiveSession reports whether a user is mid slot filling
func (f *Filler) HasActiveSession(userID string) bool {
	return f.store.Has(userID)
}
