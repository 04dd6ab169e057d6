package intent

// classifyPrompt is the taxonomy prompt sent for every classification.
// The few-shot block covers booking and search heavily because those are
// the highest-traffic intents for this user base.
const classifyPrompt = `You are an Intent Classifier for VoxNav, a voice-activated assistant for Indian users.

TASK: Classify the user's input into exactly ONE intent category and extract relevant entities.

INTENT CATEGORIES:
1. BOOKING - Book/reserve tickets, hotels, food orders, appointments, cabs
   Sub-intents: train_ticket, flight, hotel, bus, cab, food_order, appointment, restaurant
2. SEARCH - Find information, products, weather, news, or lookup anything
   Sub-intents: weather, product, news, location, general_search
3. NAVIGATION - Navigate to pages, scroll, click elements
   Sub-intents: go_to_page, scroll, click_element
4. FORM_FILL - Fill forms, login, signup, enter data
   Sub-intents: login, signup, fill_field, payment
5. CANCEL - Cancel, abort, stop, go back
   Sub-intents: cancel_booking, abort_action, go_back
6. HELP - Ask for help, capabilities, or guidance
   Sub-intents: how_to, what_can_you_do, explain
7. GENERAL_INFO - Greetings, thanks, casual chat
   Sub-intents: greeting, thanks, chitchat, clarification

LANGUAGE CODES: en (English), hi (Hindi), hinglish (Hindi-English mix), ta, te, bn, mr, gu, kn, ml, pa, or, ur

EXAMPLES:
Input: "Book a train ticket from Delhi to Mumbai"
Output: {"intent": "BOOKING", "confidence": 0.98, "sub_intent": "train_ticket", "entities": {"source": "Delhi", "destination": "Mumbai"}, "language_detected": "en"}

Input: "Mujhe Delhi se Mumbai ki train book karni hai"
Output: {"intent": "BOOKING", "confidence": 0.97, "sub_intent": "train_ticket", "entities": {"source": "Delhi", "destination": "Mumbai"}, "language_detected": "hinglish"}

Input: "Flight book karo Bangalore to Chennai"
Output: {"intent": "BOOKING", "confidence": 0.96, "sub_intent": "flight", "entities": {"source": "Bangalore", "destination": "Chennai"}, "language_detected": "hinglish"}

Input: "Book a cab to airport"
Output: {"intent": "BOOKING", "confidence": 0.98, "sub_intent": "cab", "entities": {"destination": "airport"}, "language_detected": "en"}

Input: "Zomato pe pizza order karo"
Output: {"intent": "BOOKING", "confidence": 0.95, "sub_intent": "food_order", "entities": {"platform": "Zomato", "item": "pizza"}, "language_detected": "hinglish"}

Input: "Hotel book karo Goa mein next week"
Output: {"intent": "BOOKING", "confidence": 0.96, "sub_intent": "hotel", "entities": {"location": "Goa", "date": "next week"}, "language_detected": "hinglish"}

Input: "Swiggy se biryani mangao"
Output: {"intent": "BOOKING", "confidence": 0.94, "sub_intent": "food_order", "entities": {"platform": "Swiggy", "item": "biryani"}, "language_detected": "hinglish"}

Input: "Mujhe Bangalore ka weather batao"
Output: {"intent": "SEARCH", "confidence": 0.97, "sub_intent": "weather", "entities": {"location": "Bangalore"}, "language_detected": "hinglish"}

Input: "Amazon pe iPhone search karo"
Output: {"intent": "SEARCH", "confidence": 0.96, "sub_intent": "product", "entities": {"query": "iPhone", "platform": "Amazon"}, "language_detected": "hinglish"}

Input: "Flipkart pe mobile search karo"
Output: {"intent": "SEARCH", "confidence": 0.95, "sub_intent": "product", "entities": {"query": "mobile", "platform": "Flipkart"}, "language_detected": "hinglish"}

Input: "Weather check karo Mumbai ka"
Output: {"intent": "SEARCH", "confidence": 0.96, "sub_intent": "weather", "entities": {"location": "Mumbai"}, "language_detected": "hinglish"}

Input: "What is the news today"
Output: {"intent": "SEARCH", "confidence": 0.94, "sub_intent": "news", "entities": {"query": "today's news"}, "language_detected": "en"}

Input: "Find restaurants near me"
Output: {"intent": "SEARCH", "confidence": 0.95, "sub_intent": "location", "entities": {"query": "restaurants", "location": "near me"}, "language_detected": "en"}

Input: "Google pe Python tutorial search karo"
Output: {"intent": "SEARCH", "confidence": 0.95, "sub_intent": "general_search", "entities": {"query": "Python tutorial", "platform": "Google"}, "language_detected": "hinglish"}

Input: "Go to settings page"
Output: {"intent": "NAVIGATION", "confidence": 0.97, "sub_intent": "go_to_page", "entities": {"target": "settings"}, "language_detected": "en"}

RULES:
1. Return ONLY valid JSON, no markdown or extra text
2. Set confidence between 0.85-0.99 based on clarity
3. Extract ALL relevant entities (source, destination, date, location, query, platform, item)
4. For food orders (Zomato, Swiggy), use BOOKING with sub_intent "food_order"
5. For product searches (Amazon, Flipkart), use SEARCH with sub_intent "product"
6. Detect language accurately (hinglish if mixed Hindi-English)

RESPONSE FORMAT:
{"intent": "INTENT_NAME", "confidence": 0.XX, "sub_intent": "sub_intent_name", "entities": {}, "language_detected": "code"}

Now classify this input:`

// intentKeywords backs the local keyword classifier used when the model
// is unreachable or returns garbage
var intentKeywords = map[Intent][]string{
	Booking: {
		"book", "reserve", "order", "ticket", "flight", "train", "bus", "cab", "taxi",
		"hotel", "appointment", "table", "mangao", "order karo", "book karo", "book karni",
		"booking", "reservation", "zomato", "swiggy", "uber", "ola", "makemytrip", "irctc",
	},
	Search: {
		"search", "find", "look", "weather", "news", "show", "batao", "dikha", "kya hai",
		"where", "kahan", "location", "check", "search karo", "dekho", "pata karo",
		"amazon", "flipkart", "google", "youtube",
	},
	Navigation: {
		"go to", "open", "navigate", "scroll", "click", "tap", "press", "jao", "kholo",
		"page", "section", "menu", "back", "forward", "home",
	},
	Cancel: {
		"cancel", "stop", "abort", "go back", "undo", "ruk", "band karo", "cancel karo",
		"nahi chahiye", "mat karo", "delete", "remove",
	},
	Help: {
		"help", "assist", "how to", "what can", "kaise", "kya kar sakte", "madad",
		"explain", "guide", "tutorial", "sahayata",
	},
	FormFill: {
		"fill", "login", "sign up", "signup", "register", "form", "submit",
		"enter", "type", "likho", "bharo",
	},
	GeneralInfo: {
		"thank", "thanks", "hello", "hi", "bye", "good", "ok", "okay", "fine",
		"dhanyawad", "shukriya", "namaste", "theek", "accha",
	},
}

// subIntents lists the valid refinements per intent
var subIntents = map[Intent][]string{
	Booking:     {"train_ticket", "flight", "hotel", "bus", "cab", "food_order", "appointment", "restaurant"},
	Search:      {"weather", "product", "news", "location", "general_search"},
	Navigation:  {"go_to_page", "scroll", "click_element"},
	FormFill:    {"login", "signup", "fill_field", "payment"},
	Cancel:      {"cancel_booking", "abort_action", "go_back"},
	Help:        {"how_to", "what_can_you_do", "explain"},
	GeneralInfo: {"greeting", "thanks", "chitchat", "clarification"},
}

// SubIntents returns the valid sub-intent names for an intent
func SubIntents(i Intent) []string {
	return subIntents[i]
}
