package language

import (
	"fmt"
	"strings"
	"unicode"
)

// scriptRanges lists Unicode blocks per script. Order matters: the first
// script whose rune fraction clears the threshold wins.
var scriptRanges = []struct {
	name   string
	ranges []*unicode.RangeTable
}{
	{"devanagari", []*unicode.RangeTable{rangeTable(0x0900, 0x097F)}},
	{"bengali", []*unicode.RangeTable{rangeTable(0x0980, 0x09FF)}},
	{"tamil", []*unicode.RangeTable{rangeTable(0x0B80, 0x0BFF)}},
	{"telugu", []*unicode.RangeTable{rangeTable(0x0C00, 0x0C7F)}},
	{"gujarati", []*unicode.RangeTable{rangeTable(0x0A80, 0x0AFF)}},
	{"kannada", []*unicode.RangeTable{rangeTable(0x0C80, 0x0CFF)}},
	{"malayalam", []*unicode.RangeTable{rangeTable(0x0D00, 0x0D7F)}},
	{"gurmukhi", []*unicode.RangeTable{rangeTable(0x0A00, 0x0A7F)}},
	{"arabic", []*unicode.RangeTable{rangeTable(0x0600, 0x06FF), rangeTable(0x0750, 0x077F)}},
}

// scriptLanguage maps a detected script to its language. Devanagari maps
// to Hindi even though Marathi shares the script; without more signal
// Hindi is the likelier read for this user base.
var scriptLanguage = map[string]Language{
	"devanagari": Hindi,
	"bengali":    Bengali,
	"tamil":      Tamil,
	"telugu":     Telugu,
	"gujarati":   Gujarati,
	"kannada":    Kannada,
	"malayalam":  Malayalam,
	"gurmukhi":   Punjabi,
	"arabic":     Urdu,
}

func rangeTable(lo, hi rune) *unicode.RangeTable {
	return &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: uint16(lo), Hi: uint16(hi), Stride: 1}},
	}
}

// DetectScript returns the dominant script of text and a confidence.
// A script wins when its runes make up more than 30% of the non-space
// runes; otherwise the text is treated as Latin.
func DetectScript(text string) (string, float64) {
	total := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			total++
		}
	}
	if total == 0 {
		return "latin", 0.8
	}

	for _, script := range scriptRanges {
		matches := 0
		for _, r := range text {
			for _, table := range script.ranges {
				if unicode.Is(table, r) {
					matches++
					break
				}
			}
		}
		if matches > 0 {
			fraction := float64(matches) / float64(total)
			if fraction > 0.3 {
				return script.name, min(fraction*1.5, 1.0)
			}
		}
	}

	return "latin", 0.8
}

// hinglishScore counts distinct lexicon hits in text
func hinglishScore(text string) (int, []string) {
	lower := strings.ToLower(text)
	score := 0
	var matched []string

	for _, group := range hinglishLexicon {
		for _, pattern := range group.patterns {
			if strings.Contains(lower, pattern) {
				score++
				matched = append(matched, fmt.Sprintf("%s:%s", group.category, pattern))
			}
		}
	}

	return score, matched
}

// Detect classifies the language of an utterance. It is a pure function
// and never fails; unrecognizable input comes back as English.
func Detect(text string) Detection {
	script, scriptConf := DetectScript(text)

	if lang, ok := scriptLanguage[script]; ok {
		return Detection{
			Language:   lang,
			Script:     script,
			Confidence: scriptConf,
		}
	}

	score, matched := hinglishScore(text)
	if score >= 2 {
		return Detection{
			Language:        Hinglish,
			Script:          "latin",
			IsRomanized:     true,
			Confidence:      min(0.5+float64(score)*0.1, 0.95),
			MatchedPatterns: matched,
		}
	}

	return Detection{
		Language:   English,
		Script:     "latin",
		Confidence: 0.7,
	}
}
