package dialogue

import (
	"context"
	"strings"
	"testing"
	"time"

	"voxnav/internal/intent"
	"voxnav/internal/language"
	"voxnav/internal/session"
	"voxnav/internal/slots"
	"voxnav/pkg/datemath"
	"voxnav/pkg/llmprovider"
	"voxnav/pkg/log"
	"voxnav/pkg/stt"
)

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

// mockGenerator answers prompts by matching substrings, in order
type mockGenerator struct {
	responses []scriptedResponse
	calls     []string
}

type scriptedResponse struct {
	promptContains string
	text           string
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.TextRequest) (*llmprovider.TextResponse, error) {
	m.calls = append(m.calls, req.Prompt)
	for _, r := range m.responses {
		if r.promptContains == "" || strings.Contains(req.Prompt, r.promptContains) {
			return &llmprovider.TextResponse{Text: r.text, ProviderName: "mock", ModelName: "mock"}, nil
		}
	}
	return &llmprovider.TextResponse{Text: "{}", ProviderName: "mock", ModelName: "mock"}, nil
}

type mockSTT struct {
	text       string
	confidence float64
	err        error
}

func (m *mockSTT) Transcribe(ctx context.Context, audio []byte, lang string) (stt.Result, error) {
	if m.err != nil {
		return stt.Result{}, m.err
	}
	return stt.Result{Text: m.text, Language: lang, Confidence: m.confidence}, nil
}

func (m *mockSTT) Close() error { return nil }

func newTestOrchestrator(t *testing.T, gen *mockGenerator, sttProvider stt.Provider) (*Orchestrator, session.Store) {
	t.Helper()

	logger := &mockLogger{}
	store := session.NewLRUStore(16, time.Minute)

	dates, err := datemath.NewParser("Asia/Kolkata")
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}

	classifier := intent.NewClassifier(gen, logger)
	filler := slots.NewFiller(gen, store, dates, 5, logger)

	return NewOrchestrator(classifier, filler, store, gen, sttProvider, logger), store
}

func TestProcessText_Help(t *testing.T) {
	gen := &mockGenerator{responses: []scriptedResponse{
		{promptContains: "Now classify this input", text: `{"intent": "HELP", "confidence": 0.95, "sub_intent": null, "entities": {}, "language_detected": "en"}`},
	}}
	o, _ := newTestOrchestrator(t, gen, nil)

	resp := o.ProcessText(context.Background(), TurnInput{UserID: "u1", Text: "what can you do"})

	if resp.ResponseType != TypeResponse {
		t.Errorf("ResponseType = %q, want %q", resp.ResponseType, TypeResponse)
	}
	if resp.Intent != string(intent.Help) {
		t.Errorf("Intent = %q, want HELP", resp.Intent)
	}
	if resp.TurnID == "" {
		t.Error("expected a turn id")
	}
	if !strings.Contains(resp.Message, "Booking trains") {
		t.Errorf("help message missing capabilities: %q", resp.Message)
	}
	// one classification call only, no generation
	if len(gen.calls) != 1 {
		t.Errorf("model calls = %d, want 1", len(gen.calls))
	}
}

func TestProcessText_BookingMultiTurn(t *testing.T) {
	gen := &mockGenerator{responses: []scriptedResponse{
		{promptContains: "Now classify this input", text: `{"intent": "BOOKING", "confidence": 0.95, "sub_intent": "train_ticket", "entities": {}, "language_detected": "en"}`},
		{promptContains: "Extract information from", text: `{"source": "Delhi", "destination": "Mumbai", "date": null, "class": null}`},
	}}
	o, store := newTestOrchestrator(t, gen, nil)
	ctx := context.Background()

	resp := o.ProcessText(ctx, TurnInput{UserID: "u1", Text: "book a train from Delhi to Mumbai"})

	if resp.ResponseType != TypeQuestion {
		t.Fatalf("ResponseType = %q, want %q", resp.ResponseType, TypeQuestion)
	}
	if resp.AwaitingSlot != "date" {
		t.Errorf("AwaitingSlot = %q, want %q", resp.AwaitingSlot, "date")
	}
	if resp.Slots["source"] != "Delhi" || resp.Slots["destination"] != "Mumbai" {
		t.Errorf("Slots = %v, want Delhi/Mumbai filled", resp.Slots)
	}

	sess, ok := store.Get("u1")
	if !ok {
		t.Fatal("expected an open session after an incomplete turn")
	}
	if sess.AwaitingSlot != "date" {
		t.Errorf("session AwaitingSlot = %q, want %q", sess.AwaitingSlot, "date")
	}

	// the follow-up supplies the date; no URL means a ready summary
	gen.responses = []scriptedResponse{
		{promptContains: "Extract information from", text: `{"source": null, "destination": null, "date": "tomorrow", "class": null}`},
	}

	resp = o.ProcessText(ctx, TurnInput{UserID: "u1", Text: "tomorrow"})

	if resp.ResponseType != TypeResponse {
		t.Fatalf("ResponseType = %q, want %q", resp.ResponseType, TypeResponse)
	}
	if resp.Slots["source"] != "Delhi" {
		t.Errorf("Slots[source] = %q, earlier value should survive the merge", resp.Slots["source"])
	}
	if !strings.HasPrefix(resp.Slots["date"], "20") {
		t.Errorf("Slots[date] = %q, want a normalized ISO date", resp.Slots["date"])
	}
	if _, ok := store.Get("u1"); ok {
		t.Error("session should be cleared once all slots are filled")
	}
}

func TestProcessText_BookingWithURLGeneratesActions(t *testing.T) {
	gen := &mockGenerator{responses: []scriptedResponse{
		{promptContains: "Now classify this input", text: `{"intent": "BOOKING", "confidence": 0.9, "sub_intent": "train_ticket", "entities": {}, "language_detected": "en"}`},
		{promptContains: "Extract information from", text: `{"source": "Delhi", "destination": "Mumbai", "date": "today", "class": "sleeper"}`},
		{promptContains: "Generate browser automation commands", text: `[{"action": "fill", "selector": "#origin", "value": "Delhi"}, {"action": "fill", "selector": "#destination", "value": "Mumbai"}, {"action": "click", "selector": "#search-btn"}]`},
	}}
	o, _ := newTestOrchestrator(t, gen, nil)

	resp := o.ProcessText(context.Background(), TurnInput{
		UserID: "u1",
		Text:   "book train Delhi to Mumbai today in sleeper",
		URL:    "https://www.irctc.co.in/nget/train-search",
	})

	if resp.ResponseType != TypeAction {
		t.Fatalf("ResponseType = %q, want %q", resp.ResponseType, TypeAction)
	}
	if len(resp.Actions) != 3 {
		t.Fatalf("len(Actions) = %d, want 3", len(resp.Actions))
	}
	if resp.Actions[0].Selector != "#origin" || resp.Actions[0].Value != "Delhi" {
		t.Errorf("Actions[0] = %+v", resp.Actions[0])
	}
}

func TestProcessText_ActionGenerationBadJSON(t *testing.T) {
	gen := &mockGenerator{responses: []scriptedResponse{
		{promptContains: "Now classify this input", text: `{"intent": "BOOKING", "confidence": 0.9, "sub_intent": "train_ticket", "entities": {}, "language_detected": "en"}`},
		{promptContains: "Extract information from", text: `{"source": "Delhi", "destination": "Mumbai", "date": "today", "class": "sleeper"}`},
		{promptContains: "Generate browser automation commands", text: `sorry, I cannot do that`},
	}}
	o, _ := newTestOrchestrator(t, gen, nil)

	resp := o.ProcessText(context.Background(), TurnInput{
		UserID: "u1",
		Text:   "book train Delhi to Mumbai today sleeper",
		URL:    "https://www.irctc.co.in/nget/train-search",
	})

	if resp.ResponseType != TypeError {
		t.Errorf("ResponseType = %q, want %q", resp.ResponseType, TypeError)
	}
}

func TestProcessText_SearchWithSelector(t *testing.T) {
	gen := &mockGenerator{responses: []scriptedResponse{
		{promptContains: "Now classify this input", text: `{"intent": "SEARCH", "confidence": 0.9, "sub_intent": "product", "entities": {"query": "wireless headphones"}, "language_detected": "en"}`},
	}}
	o, _ := newTestOrchestrator(t, gen, nil)

	resp := o.ProcessText(context.Background(), TurnInput{
		UserID: "u1",
		Text:   "search for wireless headphones",
		URL:    "https://www.amazon.in",
	})

	if resp.ResponseType != TypeAction {
		t.Fatalf("ResponseType = %q, want %q", resp.ResponseType, TypeAction)
	}
	if len(resp.Actions) != 2 {
		t.Fatalf("len(Actions) = %d, want 2", len(resp.Actions))
	}
	if resp.Actions[0].Action != "fill" || resp.Actions[0].Value != "wireless headphones" {
		t.Errorf("Actions[0] = %+v", resp.Actions[0])
	}
	if resp.Actions[1].Action != "submit" {
		t.Errorf("Actions[1].Action = %q, want submit", resp.Actions[1].Action)
	}
}

func TestProcessText_SearchWithoutURL(t *testing.T) {
	gen := &mockGenerator{responses: []scriptedResponse{
		{promptContains: "Now classify this input", text: `{"intent": "SEARCH", "confidence": 0.9, "sub_intent": null, "entities": {}, "language_detected": "en"}`},
	}}
	o, _ := newTestOrchestrator(t, gen, nil)

	resp := o.ProcessText(context.Background(), TurnInput{UserID: "u1", Text: "find something"})

	if resp.ResponseType != TypeResponse {
		t.Errorf("ResponseType = %q, want %q", resp.ResponseType, TypeResponse)
	}
	if len(resp.Actions) != 0 {
		t.Errorf("len(Actions) = %d, want 0", len(resp.Actions))
	}
	// no query entity means the raw utterance is the query
	if !strings.Contains(resp.Message, "find something") {
		t.Errorf("Message = %q, want it to echo the utterance", resp.Message)
	}
}

func TestProcessText_CancelClearsSession(t *testing.T) {
	gen := &mockGenerator{responses: []scriptedResponse{
		{promptContains: "Now classify this input", text: `{"intent": "BOOKING", "confidence": 0.9, "sub_intent": "train_ticket", "entities": {}, "language_detected": "en"}`},
		{promptContains: "Extract information from", text: `{"source": "Delhi", "destination": null, "date": null, "class": null}`},
	}}
	o, store := newTestOrchestrator(t, gen, nil)
	ctx := context.Background()

	o.ProcessText(ctx, TurnInput{UserID: "u1", Text: "book a train from Delhi"})
	if _, ok := store.Get("u1"); !ok {
		t.Fatal("expected an open session")
	}

	gen.responses = []scriptedResponse{
		{promptContains: "Extract information from", text: `{"source": null, "destination": null, "date": null, "class": null}`},
		{promptContains: "Now classify this input", text: `{"intent": "CANCEL", "confidence": 0.95, "sub_intent": null, "entities": {}, "language_detected": "en"}`},
	}

	// an open slot exchange absorbs the turn first, so clear it directly
	o.ClearSession("u1")
	resp := o.ProcessText(ctx, TurnInput{UserID: "u1", Text: "cancel that"})

	if resp.Intent != string(intent.Cancel) {
		t.Errorf("Intent = %q, want CANCEL", resp.Intent)
	}
	if _, ok := store.Get("u1"); ok {
		t.Error("session should be gone after cancel")
	}
}

func TestProcessText_GeneralFreeForm(t *testing.T) {
	gen := &mockGenerator{responses: []scriptedResponse{
		{promptContains: "Now classify this input", text: `{"intent": "GENERAL_INFO", "confidence": 0.8, "sub_intent": null, "entities": {}, "language_detected": "en"}`},
		{promptContains: "Respond helpfully", text: "The Taj Mahal is in Agra."},
	}}
	o, _ := newTestOrchestrator(t, gen, nil)

	resp := o.ProcessText(context.Background(), TurnInput{UserID: "u1", Text: "where is the taj mahal"})

	if resp.ResponseType != TypeResponse {
		t.Errorf("ResponseType = %q, want %q", resp.ResponseType, TypeResponse)
	}
	if resp.Message != "The Taj Mahal is in Agra." {
		t.Errorf("Message = %q", resp.Message)
	}
}

func TestProcessAudio(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		gen := &mockGenerator{responses: []scriptedResponse{
			{promptContains: "Now classify this input", text: `{"intent": "HELP", "confidence": 0.9, "sub_intent": null, "entities": {}, "language_detected": "en"}`},
		}}
		o, _ := newTestOrchestrator(t, gen, &mockSTT{text: "what can you do", confidence: 0.92})

		resp := o.ProcessAudio(context.Background(), AudioInput{UserID: "u1", Audio: []byte("pcm"), Language: "en-IN"})

		if resp.Transcription != "what can you do" {
			t.Errorf("Transcription = %q", resp.Transcription)
		}
		if resp.STTConfidence != 0.92 {
			t.Errorf("STTConfidence = %v, want 0.92", resp.STTConfidence)
		}
		if resp.Intent != string(intent.Help) {
			t.Errorf("Intent = %q, want HELP", resp.Intent)
		}
	})

	t.Run("Transcription Failure", func(t *testing.T) {
		gen := &mockGenerator{}
		o, _ := newTestOrchestrator(t, gen, &mockSTT{err: context.DeadlineExceeded})

		resp := o.ProcessAudio(context.Background(), AudioInput{UserID: "u1", Audio: []byte("pcm"), Language: "hi"})

		if resp.ResponseType != TypeError {
			t.Errorf("ResponseType = %q, want %q", resp.ResponseType, TypeError)
		}
		if len(gen.calls) != 0 {
			t.Errorf("model calls = %d, want 0", len(gen.calls))
		}
	})

	t.Run("No Provider", func(t *testing.T) {
		o, _ := newTestOrchestrator(t, &mockGenerator{}, nil)

		resp := o.ProcessAudio(context.Background(), AudioInput{UserID: "u1", Audio: []byte("pcm")})

		if resp.ResponseType != TypeError {
			t.Errorf("ResponseType = %q, want %q", resp.ResponseType, TypeError)
		}
	})
}

func TestProcessText_RecoversFromPanic(t *testing.T) {
	o, _ := newTestOrchestrator(t, &mockGenerator{}, nil)
	o.handlers[intent.Unknown] = func(ctx context.Context, in TurnInput, result intent.Result, lang language.Language) Response {
		panic("boom")
	}

	resp := o.ProcessText(context.Background(), TurnInput{UserID: "u1", Text: "zz qq xx"})

	if resp.ResponseType != TypeError {
		t.Errorf("ResponseType = %q, want %q", resp.ResponseType, TypeError)
	}
	if resp.Message == "" {
		t.Error("expected a localized error message")
	}
}
