package language

// Language is a supported conversation language
type Language string

const (
	English   Language = "en"
	Hindi     Language = "hi"
	Hinglish  Language = "hinglish"
	Bengali   Language = "bn"
	Tamil     Language = "ta"
	Telugu    Language = "te"
	Marathi   Language = "mr"
	Gujarati  Language = "gu"
	Kannada   Language = "kn"
	Malayalam Language = "ml"
	Punjabi   Language = "pa"
	Odia      Language = "or"
	Urdu      Language = "ur"
)

// Detection is the outcome of language detection for one utterance
type Detection struct {
	Language        Language
	Script          string
	IsRomanized     bool
	Confidence      float64
	MatchedPatterns []string
}

// Parse maps a language code to a Language, defaulting to English
func Parse(code string) Language {
	switch Language(code) {
	case English, Hindi, Hinglish, Bengali, Tamil, Telugu, Marathi,
		Gujarati, Kannada, Malayalam, Punjabi, Odia, Urdu:
		return Language(code)
	}
	return English
}
