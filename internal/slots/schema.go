package slots

// schemas maps intent then sub-intent to its slot schema. Absence means
// the intent needs no slot gating and is immediately actionable.
var schemas = map[string]map[string]Schema{
	"BOOKING": {
		"train_ticket": {
			Required: []string{"source", "destination", "date"},
			Optional: []string{"class", "passengers", "time_preference", "quota"},
			Prompts: map[string]QuestionSet{
				"source": {
					En:       "Where would you like to travel from?",
					Hi:       "आप कहाँ से यात्रा करना चाहते हैं?",
					Hinglish: "Aap kahan se travel karna chahte ho?",
				},
				"destination": {
					En:       "Where would you like to go?",
					Hi:       "आप कहाँ जाना चाहते हैं?",
					Hinglish: "Aap kahan jaana chahte ho?",
				},
				"date": {
					En:       "When do you want to travel?",
					Hi:       "आप कब यात्रा करना चाहते हैं?",
					Hinglish: "Aap kab travel karna chahte ho?",
				},
				"class": {
					En:       "Which class? (Sleeper, AC, General)",
					Hi:       "कौन सी श्रेणी? (स्लीपर, एसी, जनरल)",
					Hinglish: "Kaun si class? (Sleeper, AC, General)",
				},
				"passengers": {
					En:       "How many passengers?",
					Hi:       "कितने यात्री?",
					Hinglish: "Kitne passengers?",
				},
			},
		},
		"flight": {
			Required: []string{"source", "destination", "date"},
			Optional: []string{"return_date", "passengers", "class", "airline_preference"},
			Prompts: map[string]QuestionSet{
				"source": {
					En:       "Which city are you departing from?",
					Hi:       "आप किस शहर से निकल रहे हैं?",
					Hinglish: "Aap kis city se nikal rahe ho?",
				},
				"destination": {
					En:       "What's your destination city?",
					Hi:       "आपकी मंजिल कौन सा शहर है?",
					Hinglish: "Aapki destination city kya hai?",
				},
				"date": {
					En:       "What's your travel date?",
					Hi:       "आपकी यात्रा की तारीख क्या है?",
					Hinglish: "Aapki travel date kya hai?",
				},
				"return_date": {
					En:       "When do you want to return? (or say 'one way')",
					Hi:       "आप कब वापस आना चाहते हैं? (या 'एक तरफ़ा' बोलें)",
					Hinglish: "Aap kab return karna chahte ho? (ya 'one way' bolo)",
				},
			},
		},
		"hotel": {
			Required: []string{"location", "checkin_date", "checkout_date"},
			Optional: []string{"guests", "rooms", "room_type", "budget", "amenities"},
			Prompts: map[string]QuestionSet{
				"location": {
					En:       "Which city do you need a hotel in?",
					Hi:       "आपको किस शहर में होटल चाहिए?",
					Hinglish: "Aapko kis city mein hotel chahiye?",
				},
				"checkin_date": {
					En:       "When do you want to check in?",
					Hi:       "आप कब चेक-इन करना चाहते हैं?",
					Hinglish: "Aap kab check-in karna chahte ho?",
				},
				"checkout_date": {
					En:       "When will you check out?",
					Hi:       "आप कब चेक-आउट करेंगे?",
					Hinglish: "Aap kab check-out karoge?",
				},
				"guests": {
					En:       "How many guests?",
					Hi:       "कितने मेहमान?",
					Hinglish: "Kitne guests?",
				},
			},
		},
		"cab": {
			Required: []string{"pickup", "drop"},
			Optional: []string{"time", "cab_type"},
			Prompts: map[string]QuestionSet{
				"pickup": {
					En:       "Where should we pick you up?",
					Hi:       "हम आपको कहाँ से उठाएं?",
					Hinglish: "Aapko kahan se pick karna hai?",
				},
				"drop": {
					En:       "Where do you want to go?",
					Hi:       "आप कहाँ जाना चाहते हैं?",
					Hinglish: "Aap kahan jaana chahte ho?",
				},
				"time": {
					En:       "When do you need the cab?",
					Hi:       "आपको कैब कब चाहिए?",
					Hinglish: "Cab kab chahiye aapko?",
				},
			},
		},
	},
	"SEARCH": {
		"weather": {
			Required: []string{"location"},
			Optional: []string{"date"},
			Prompts: map[string]QuestionSet{
				"location": {
					En:       "Which city's weather do you want to know?",
					Hi:       "आप किस शहर का मौसम जानना चाहते हैं?",
					Hinglish: "Kis city ka weather jaanna hai?",
				},
			},
		},
		"product": {
			Required: []string{"query"},
			Optional: []string{"platform", "price_range", "brand"},
			Prompts: map[string]QuestionSet{
				"query": {
					En:       "What product are you looking for?",
					Hi:       "आप कौन सा प्रोडक्ट खोज रहे हैं?",
					Hinglish: "Aap kya search kar rahe ho?",
				},
			},
		},
	},
}

// GetSchema returns the slot schema for an intent/sub-intent pair
func GetSchema(intent, subIntent string) (Schema, bool) {
	bySubIntent, ok := schemas[intent]
	if !ok {
		return Schema{}, false
	}
	schema, ok := bySubIntent[subIntent]
	return schema, ok
}
