package dialogue

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/google/uuid"

	"voxnav/internal/intent"
	"voxnav/internal/language"
	"voxnav/internal/session"
	"voxnav/internal/slots"
	"voxnav/internal/webctx"
	"voxnav/pkg/llmprovider"
	"voxnav/pkg/log"
	"voxnav/pkg/stt"
)

const defaultBookingSubIntent = "train_ticket"

// handler processes one classified turn
type handler func(ctx context.Context, in TurnInput, result intent.Result, lang language.Language) Response

// Orchestrator coordinates language detection, intent classification,
// slot filling, and response generation for each user turn. Turns for
// the same user are serialized; different users run in parallel.
type Orchestrator struct {
	classifier *intent.Classifier
	filler     *slots.Filler
	store      session.Store
	llm        intent.Generator
	stt        stt.Provider
	logger     log.Logger

	handlers map[intent.Intent]handler

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewOrchestrator wires the dialogue engine. sttProvider may be nil when
// voice input is disabled.
func NewOrchestrator(
	classifier *intent.Classifier,
	filler *slots.Filler,
	store session.Store,
	llm intent.Generator,
	sttProvider stt.Provider,
	logger log.Logger,
) *Orchestrator {
	o := &Orchestrator{
		classifier: classifier,
		filler:     filler,
		store:      store,
		llm:        llm,
		stt:        sttProvider,
		logger:     logger,
		locks:      map[string]*sync.Mutex{},
	}

	o.handlers = map[intent.Intent]handler{
		intent.Booking: o.handleBooking,
		intent.Search:  o.handleSearch,
		intent.Cancel:  o.handleCancel,
		intent.Help:    o.handleHelp,
	}

	return o
}

// ProcessText handles one text turn. It never returns an error: any
// panic or failure inside the turn becomes a localized error response.
func (o *Orchestrator) ProcessText(ctx context.Context, in TurnInput) (resp Response) {
	lock := o.userLock(in.UserID)
	lock.Lock()
	defer lock.Unlock()

	detected := language.Detect(in.Text)

	defer func() {
		if r := recover(); r != nil {
			o.logger.Error(ctx, "turn processing panicked", "user_id", in.UserID, "panic", r)
			resp = o.newResponse(TypeError, errorMessage(detected.Language), detected.Language, in.Transcription)
		}
	}()

	// resume an open slot filling exchange before classifying anew
	if sess, ok := o.store.Get(in.UserID); ok && sess.AwaitingSlot != "" {
		return o.continueSlotFilling(ctx, in, sess, detected.Language)
	}

	var hint *intent.PageHint
	if in.URL != "" || in.PageHTML != "" {
		hint = &intent.PageHint{URL: in.URL}
		if in.PageHTML != "" {
			hint.PageTitle = webctx.ExtractPage(in.PageHTML, in.URL).Title
		}
	}

	result := o.classifier.Classify(ctx, in.Text, hint)
	o.logger.Info(ctx, "turn classified",
		"user_id", in.UserID, "intent", result.Intent, "confidence", result.Confidence)

	if h, ok := o.handlers[result.Intent]; ok {
		return h(ctx, in, result, result.Language)
	}
	return o.handleGeneral(ctx, in, result, result.Language)
}

// ProcessAudio transcribes the clip and runs the text pipeline on it
func (o *Orchestrator) ProcessAudio(ctx context.Context, in AudioInput) Response {
	if o.stt == nil {
		return o.newResponse(TypeError, audioErrorMessage(language.English), language.English, "")
	}

	result, err := o.stt.Transcribe(ctx, in.Audio, in.Language)
	if err != nil || result.Text == "" {
		if err != nil {
			o.logger.Warn(ctx, "transcription failed", "user_id", in.UserID, "error", err.Error())
		}
		lang := language.Parse(in.Language)
		return o.newResponse(TypeError, audioErrorMessage(lang), lang, "")
	}

	resp := o.ProcessText(ctx, TurnInput{
		UserID:        in.UserID,
		Text:          result.Text,
		URL:           in.URL,
		PageHTML:      in.PageHTML,
		Transcription: result.Text,
	})
	resp.STTConfidence = result.Confidence
	return resp
}

// ClearSession drops all conversation state for a user
func (o *Orchestrator) ClearSession(userID string) {
	o.store.Delete(userID)
}

func (o *Orchestrator) continueSlotFilling(ctx context.Context, in TurnInput, sess *session.Session, lang language.Language) Response {
	slotResult := o.filler.ExtractSlots(ctx, in.UserID, in.Text, sess.Intent, sess.SubIntent, lang)

	switch slotResult.Status {
	case slots.StatusComplete:
		synthesized := intent.Result{
			Intent:     intent.Intent(sess.Intent),
			Confidence: 0.9,
			SubIntent:  sess.SubIntent,
			Entities:   slotResult.FilledSlots,
			Utterance:  in.Text,
			Language:   lang,
		}
		return o.generateAction(ctx, in, synthesized, slotResult, lang)

	case slots.StatusFailed:
		return o.newResponse(TypeError, errorMessage(lang), lang, in.Transcription)

	default:
		resp := o.newResponse(TypeQuestion, slotResult.NextQuestion, lang, in.Transcription)
		resp.Intent = sess.Intent
		resp.SubIntent = sess.SubIntent
		resp.Slots = slotResult.FilledSlots
		resp.AwaitingSlot = slotResult.NextSlot
		return resp
	}
}

func (o *Orchestrator) handleBooking(ctx context.Context, in TurnInput, result intent.Result, lang language.Language) Response {
	subIntent := result.SubIntent
	if subIntent == "" {
		subIntent = defaultBookingSubIntent
	}

	slotResult := o.filler.ExtractSlots(ctx, in.UserID, in.Text, string(intent.Booking), subIntent, lang)

	switch slotResult.Status {
	case slots.StatusComplete:
		result.SubIntent = subIntent
		return o.generateAction(ctx, in, result, slotResult, lang)

	case slots.StatusFailed:
		return o.newResponse(TypeError, errorMessage(lang), lang, in.Transcription)

	default:
		question := slotResult.NextQuestion
		if question == "" {
			question = "Please provide more details."
		}
		resp := o.newResponse(TypeQuestion, question, lang, in.Transcription)
		resp.Intent = string(intent.Booking)
		resp.SubIntent = subIntent
		resp.Slots = slotResult.FilledSlots
		resp.AwaitingSlot = slotResult.NextSlot
		resp.IntentConfidence = result.Confidence
		return resp
	}
}

func (o *Orchestrator) handleSearch(ctx context.Context, in TurnInput, result intent.Result, lang language.Language) Response {
	query := result.Entities["query"]
	if query == "" {
		query = in.Text
	}

	var actions []Action
	if in.URL != "" {
		cfg := webctx.ConfigFor(in.URL)
		if selector, ok := cfg.FormMappings["search"]; ok {
			actions = []Action{
				{Action: "fill", Selector: selector, Value: query},
				{Action: "submit"},
			}
		}
	}

	respType := TypeResponse
	if len(actions) > 0 {
		respType = TypeAction
	}

	resp := o.newResponse(respType, searchMessage(lang, query), lang, in.Transcription)
	resp.Actions = actions
	resp.Intent = string(intent.Search)
	resp.SubIntent = result.SubIntent
	resp.Slots = result.Entities
	resp.IntentConfidence = result.Confidence
	return resp
}

func (o *Orchestrator) handleCancel(ctx context.Context, in TurnInput, result intent.Result, lang language.Language) Response {
	o.store.Delete(in.UserID)
	o.filler.ClearSession(in.UserID)

	resp := o.newResponse(TypeResponse, cancelMessage(lang), lang, in.Transcription)
	resp.Intent = string(intent.Cancel)
	return resp
}

func (o *Orchestrator) handleHelp(ctx context.Context, in TurnInput, result intent.Result, lang language.Language) Response {
	resp := o.newResponse(TypeResponse, helpMessage(lang), lang, in.Transcription)
	resp.Intent = string(intent.Help)
	return resp
}

// handleGeneral covers SEARCH misses, GENERAL_INFO, NAVIGATION,
// FORM_FILL, and UNKNOWN with a free-form model reply
func (o *Orchestrator) handleGeneral(ctx context.Context, in TurnInput, result intent.Result, lang language.Language) Response {
	var prompt string
	if in.URL != "" {
		prompt = webctx.BuildPrompt(in.Text, in.URL, in.PageHTML, string(result.Intent), nil)
	} else {
		prompt = language.SystemPrompt(lang) + "\n\nUser says: \"" + in.Text + "\"\n\nRespond helpfully and concisely."
	}

	genResp, err := o.llm.GenerateContent(ctx, &llmprovider.TextRequest{
		Prompt:      prompt,
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		o.logger.Warn(ctx, "free-form generation failed", "user_id", in.UserID, "error", err.Error())
		return o.newResponse(TypeError, errorMessage(lang), lang, in.Transcription)
	}

	resp := o.newResponse(TypeResponse, strings.TrimSpace(genResp.Text), lang, in.Transcription)
	resp.Intent = string(result.Intent)
	resp.IntentConfidence = result.Confidence
	return resp
}

// generateAction turns completed slots into browser automation steps
func (o *Orchestrator) generateAction(ctx context.Context, in TurnInput, result intent.Result, slotResult slots.SlotResult, lang language.Language) Response {
	if in.URL == "" {
		resp := o.newResponse(TypeResponse, readyMessage(lang, result.SubIntent, slotResult.FilledSlots), lang, in.Transcription)
		resp.Intent = string(result.Intent)
		resp.SubIntent = result.SubIntent
		resp.Slots = slotResult.FilledSlots
		resp.IntentConfidence = result.Confidence
		return resp
	}

	prompt := webctx.ActionPrompt(string(result.Intent), result.SubIntent, slotResult.FilledSlots, in.URL)

	genResp, err := o.llm.GenerateContent(ctx, &llmprovider.TextRequest{
		Prompt:      prompt,
		Temperature: 0.1,
		MaxTokens:   500,
	})
	if err != nil {
		o.logger.Warn(ctx, "action generation failed", "user_id", in.UserID, "error", err.Error())
		return o.newResponse(TypeError, actionErrorMessage(lang), lang, in.Transcription)
	}

	raw := intent.StripFences(genResp.Text)

	var actions []Action
	if err := json.Unmarshal([]byte(raw), &actions); err != nil {
		o.logger.Warn(ctx, "action generation returned unparseable JSON", "user_id", in.UserID, "error", err.Error())
		return o.newResponse(TypeError, actionErrorMessage(lang), lang, in.Transcription)
	}

	resp := o.newResponse(TypeAction, fillingMessage(lang, slotResult.FilledSlots), lang, in.Transcription)
	resp.Actions = actions
	resp.Intent = string(result.Intent)
	resp.SubIntent = result.SubIntent
	resp.Slots = slotResult.FilledSlots
	resp.IntentConfidence = result.Confidence
	return resp
}

func (o *Orchestrator) newResponse(respType, message string, lang language.Language, transcription string) Response {
	return Response{
		TurnID:        uuid.NewString(),
		ResponseType:  respType,
		Message:       message,
		Language:      lang,
		Transcription: transcription,
	}
}

// userLock returns the mutex serializing turns for one user
func (o *Orchestrator) userLock(userID string) *sync.Mutex {
	o.mu.Lock()
	defer o.mu.Unlock()

	lock, ok := o.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		o.locks[userID] = lock
	}
	return lock
}
