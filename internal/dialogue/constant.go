package dialogue

import (
	"fmt"

	"voxnav/internal/language"
)

// errorMessage is the generic per-turn failure reply
func errorMessage(lang language.Language) string {
	switch lang {
	case language.Hinglish:
		return "Sorry, kuch galat ho gaya. Phir se try karo."
	case language.Hindi:
		return "क्षमा करें, कुछ गलत हो गया। कृपया फिर से प्रयास करें।"
	default:
		return "Sorry, something went wrong. Please try again."
	}
}

// audioErrorMessage is returned when transcription fails
func audioErrorMessage(lang language.Language) string {
	switch lang {
	case language.Hinglish:
		return "Sorry, audio samajh nahi aaya. Phir se bolo."
	case language.Hindi:
		return "क्षमा करें, ऑडियो समझ नहीं आया। कृपया फिर से बोलें।"
	default:
		return "Sorry, I couldn't process that audio. Please try again."
	}
}

// cancelMessage acknowledges a cancelled exchange
func cancelMessage(lang language.Language) string {
	switch lang {
	case language.Hinglish:
		return "Theek hai, cancel kar diya. Aur kya help chahiye?"
	case language.Hindi:
		return "ठीक है, रद्द कर दिया। और क्या मदद चाहिए?"
	default:
		return "Okay, cancelled. How else can I help you?"
	}
}

// helpMessage is the static capability summary
func helpMessage(lang language.Language) string {
	switch lang {
	case language.Hinglish:
		return `Main aapki yeh help kar sakta hoon:
- Train, flight, hotel book karna
- Weather check karna
- Products search karna
- Forms fill karna
- Websites navigate karna

Bas bolo kya karna hai!`
	case language.Hindi:
		return `मैं आपकी ये मदद कर सकता हूं:
- ट्रेन, फ्लाइट, होटल बुक करना
- मौसम देखना
- प्रोडक्ट खोजना
- फॉर्म भरना
- वेबसाइट पर जाना

बस बोलो क्या करना है!`
	default:
		return `I can help you with:
- Booking trains, flights, hotels
- Checking weather
- Searching for products
- Filling forms
- Navigating websites

Just tell me what you need!`
	}
}

// searchMessage announces the search being run
func searchMessage(lang language.Language, query string) string {
	switch lang {
	case language.Hinglish:
		return fmt.Sprintf("Search kar raha hoon: %s", query)
	case language.Hindi:
		return fmt.Sprintf("खोज रहा हूं: %s", query)
	default:
		return fmt.Sprintf("Searching for: %s", query)
	}
}

// readyMessage confirms a completed booking request when there is no
// page to act on
func readyMessage(lang language.Language, subIntent string, slots map[string]string) string {
	switch lang {
	case language.Hinglish:
		return fmt.Sprintf("Okay! Main %s ke liye ready hoon: %s se %s for %s. Please open the booking website.",
			subIntent, slots["source"], slots["destination"], slots["date"])
	case language.Hindi:
		return fmt.Sprintf("ठीक है! मैं तैयार हूं: %s से %s तारीख %s के लिए। कृपया बुकिंग वेबसाइट खोलें।",
			slots["source"], slots["destination"], slots["date"])
	default:
		return fmt.Sprintf("Ready to book %s: %s to %s on %s. Please open the booking website.",
			subIntent, slots["source"], slots["destination"], slots["date"])
	}
}

// fillingMessage confirms that form automation is starting
func fillingMessage(lang language.Language, slots map[string]string) string {
	if lang == language.Hinglish {
		return fmt.Sprintf("Theek hai, filling the form: %s se %s...", slots["source"], slots["destination"])
	}
	return fmt.Sprintf("Filling the form: %s to %s...", slots["source"], slots["destination"])
}

// actionErrorMessage is returned when action generation fails
func actionErrorMessage(lang language.Language) string {
	switch lang {
	case language.Hinglish:
		return "Sorry, is website ke liye actions generate nahi kar paya."
	case language.Hindi:
		return "क्षमा करें, इस वेबसाइट के लिए एक्शन नहीं बना पाया।"
	default:
		return "Sorry, I couldn't generate the actions for this website."
	}
}
