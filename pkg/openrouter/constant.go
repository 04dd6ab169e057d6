package openrouter

import "time"

const (
	// DefaultBaseURL is the default OpenRouter API endpoint
	DefaultBaseURL = "https://openrouter.ai/api/v1"

	// DefaultTimeout bounds a single completion call
	DefaultTimeout = 120 * time.Second

	// Attribution headers OpenRouter uses for free-tier ranking
	RefererHeader = "https://voxnav.app"
	TitleHeader   = "VoxNav Voice Assistant"
)

// FreeModels is the fallback chain tried in order when a model is rate
// limited or unavailable.
var FreeModels = []string{
	"meta-llama/llama-3.2-3b-instruct:free",
	"qwen/qwen3-4b:free",
	"google/gemma-3-4b-it:free",
	"mistralai/mistral-small-3.1-24b-instruct:free",
	"deepseek/deepseek-r1-0528:free",
}

// DefaultModel is the first choice of the fallback chain.
var DefaultModel = FreeModels[0]
