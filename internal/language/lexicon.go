package language

// hinglishLexicon holds romanized Hindi markers grouped by function.
// Substring hits across categories score an utterance as Hinglish.
var hinglishLexicon = []struct {
	category string
	patterns []string
}{
	{"greetings", []string{"namaste", "namaskar", "kya haal", "kaise ho", "theek hai", "hello ji"}},
	{"confirmations", []string{"haan", "ji", "bilkul", "theek", "sahi", "accha", "ok ji", "done"}},
	{"negations", []string{"nahi", "nahin", "mat", "nope nahi", "cancel karo"}},
	{"queries", []string{"kya", "kaise", "kab", "kahan", "kitna", "kaun", "kyun", "konsa"}},
	{"verbs", []string{"karo", "karna", "batao", "dikhao", "kholo", "band karo", "bhejo"}},
	{"common_words", []string{"mujhe", "mera", "tera", "uska", "yeh", "woh", "aur", "lekin", "toh"}},
	{"booking_terms", []string{"book karo", "booking", "reserve", "cancel", "ticket"}},
	{"travel_terms", []string{"train", "flight", "bus", "hotel", "cab", "delhi", "mumbai"}},
}
