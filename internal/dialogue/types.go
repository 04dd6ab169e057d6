package dialogue

import "voxnav/internal/language"

// Response types
const (
	TypeQuestion = "question"
	TypeAction   = "action"
	TypeResponse = "response"
	TypeError    = "error"
)

// Response is the single per-turn reply sent back to the caller
type Response struct {
	TurnID       string            `json:"turn_id"`
	ResponseType string            `json:"response_type"`
	Message      string            `json:"message"`
	Language     language.Language `json:"language"`

	Actions []Action `json:"actions,omitempty"`

	Intent    string `json:"intent,omitempty"`
	SubIntent string `json:"sub_intent,omitempty"`

	Slots        map[string]string `json:"slots,omitempty"`
	AwaitingSlot string            `json:"awaiting_slot,omitempty"`

	Transcription string `json:"transcription,omitempty"`

	STTConfidence    float64 `json:"stt_confidence,omitempty"`
	IntentConfidence float64 `json:"intent_confidence,omitempty"`
}

// Action is one browser automation step
type Action struct {
	Action    string  `json:"action"`
	Selector  string  `json:"selector,omitempty"`
	Value     string  `json:"value,omitempty"`
	Seconds   float64 `json:"seconds,omitempty"`
	Direction string  `json:"direction,omitempty"`
}

// TurnInput is one text turn from a user
type TurnInput struct {
	UserID        string
	Text          string
	URL           string
	PageHTML      string
	Transcription string
}

// AudioInput is one voice turn from a user
type AudioInput struct {
	UserID   string
	Audio    []byte
	Language string
	URL      string
	PageHTML string
}
