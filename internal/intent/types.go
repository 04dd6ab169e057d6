package intent

import (
	"strings"

	"voxnav/internal/language"
)

// Intent is a top-level intent category
type Intent string

const (
	Booking     Intent = "BOOKING"
	Search      Intent = "SEARCH"
	Navigation  Intent = "NAVIGATION"
	FormFill    Intent = "FORM_FILL"
	GeneralInfo Intent = "GENERAL_INFO"
	Cancel      Intent = "CANCEL"
	Help        Intent = "HELP"
	Unknown     Intent = "UNKNOWN"
)

// Result is the outcome of classifying one utterance
type Result struct {
	Intent      Intent
	Confidence  float64
	SubIntent   string
	Entities    map[string]string
	Utterance   string
	Language    language.Language
	RawResponse string
}

// PageHint carries optional page context into classification
type PageHint struct {
	URL       string
	PageTitle string
}

// parseIntent maps a model-produced label to an Intent, case-insensitively.
// Anything unrecognized is UNKNOWN.
func parseIntent(label string) Intent {
	switch Intent(strings.ToUpper(strings.TrimSpace(label))) {
	case Booking, Search, Navigation, FormFill, GeneralInfo, Cancel, Help:
		return Intent(strings.ToUpper(strings.TrimSpace(label)))
	}
	return Unknown
}

// classifyResponse is the JSON shape the model is asked to return
type classifyResponse struct {
	Intent           string         `json:"intent"`
	Confidence       float64        `json:"confidence"`
	SubIntent        string         `json:"sub_intent"`
	Entities         map[string]any `json:"entities"`
	LanguageDetected string         `json:"language_detected"`
}
