package webctx

// siteConfigs holds pre-configured contexts for popular Indian websites.
// Lookup matches the hostname against the map key as a substring.
var siteConfigs = map[string]SiteConfig{
	"irctc.co.in": {
		Domain:       "train_booking",
		Name:         "IRCTC Indian Railways",
		Capabilities: []string{"book_train", "check_pnr", "cancel_ticket", "check_train_status"},
		SystemPrompt: `You are helping the user on IRCTC (Indian Railways booking system).

AVAILABLE ACTIONS:
- Search for trains between stations
- Book train tickets (requires login)
- Check PNR status
- Cancel booked tickets
- Check train running status

FORM FIELDS TO IDENTIFY:
- From Station (origin)
- To Station (destination)
- Journey Date
- Travel Class (Sleeper, AC 3-Tier, AC 2-Tier, AC 1-Tier)
- Quota (General, Tatkal, Ladies, Senior Citizen)

Guide the user step by step through the booking process.
If user is not logged in, suggest logging in first.`,
		FormMappings: map[string]string{
			"source":      `#fromStation, input[name="source"], #origin`,
			"destination": `#toStation, input[name="destination"], #dest`,
			"date":        `#journeyDate, input[name="journeyDate"]`,
			"class":       `#journeyClass, select[name="class"]`,
			"quota":       `#journeyQuota, select[name="quota"]`,
		},
	},

	"makemytrip.com": {
		Domain:       "travel",
		Name:         "MakeMyTrip",
		Capabilities: []string{"book_flight", "book_hotel", "book_bus", "book_cab", "holiday_packages"},
		SystemPrompt: `You are assisting on MakeMyTrip travel booking platform.

AVAILABLE ACTIONS:
- Search and book flights (domestic/international)
- Book hotels
- Book buses
- Book cabs/rentals
- Browse holiday packages

Help users find the best deals and complete their bookings efficiently.
Compare prices when asked and suggest alternatives.`,
		FormMappings: map[string]string{
			"source":      `[data-cy="fromCity"], #fromCity`,
			"destination": `[data-cy="toCity"], #toCity`,
			"date":        `[data-cy="departureDate"], #departure`,
			"return_date": `[data-cy="returnDate"], #return`,
			"passengers":  `[data-cy="travellers"]`,
		},
	},

	"amazon.in": {
		Domain:       "shopping",
		Name:         "Amazon India",
		Capabilities: []string{"search_product", "add_to_cart", "checkout", "track_order"},
		SystemPrompt: `You are helping the user shop on Amazon India.

AVAILABLE ACTIONS:
- Search for products
- Add items to cart
- Apply filters (price, rating, brand)
- Proceed to checkout
- Track existing orders

Help users find products, compare options, and complete purchases.
Mention deals and discounts when visible.`,
		FormMappings: map[string]string{
			"search":      `#twotabsearchtextbox, input[name="field-keywords"]`,
			"add_to_cart": `#add-to-cart-button`,
			"buy_now":     `#buy-now-button`,
		},
	},

	"flipkart.com": {
		Domain:       "shopping",
		Name:         "Flipkart",
		Capabilities: []string{"search_product", "add_to_cart", "checkout", "track_order"},
		SystemPrompt: `You are helping the user shop on Flipkart.

AVAILABLE ACTIONS:
- Search products
- Filter by price, brand, rating
- Add to cart
- Buy now
- Track orders

Help users find the best deals on Flipkart.`,
		FormMappings: map[string]string{
			"search":      `input[name="q"], ._3704LK input`,
			"add_to_cart": `._2KpZ6l._2U9uOA`,
			"buy_now":     `._2KpZ6l._2HKlqd`,
		},
	},

	"zomato.com": {
		Domain:       "food",
		Name:         "Zomato",
		Capabilities: []string{"search_restaurant", "order_food", "book_table"},
		SystemPrompt: `You are helping the user on Zomato.

AVAILABLE ACTIONS:
- Search for restaurants
- Order food delivery
- Book a table
- Browse menus
- Apply filters (cuisine, rating, price)

Help users find great food and restaurants.`,
		FormMappings: map[string]string{
			"search":   `input[placeholder*="Search"]`,
			"location": `input[placeholder*="Location"]`,
		},
	},

	"swiggy.com": {
		Domain:       "food",
		Name:         "Swiggy",
		Capabilities: []string{"search_restaurant", "order_food"},
		SystemPrompt: `You are helping the user order food on Swiggy.

AVAILABLE ACTIONS:
- Search restaurants or dishes
- Order food for delivery
- Apply offers and coupons
- Track orders

Help users order food quickly.`,
		FormMappings: map[string]string{
			"search": `input[placeholder*="Search"]`,
		},
	},

	"bookmyshow.com": {
		Domain:       "entertainment",
		Name:         "BookMyShow",
		Capabilities: []string{"book_movie", "book_event", "book_show"},
		SystemPrompt: `You are helping the user on BookMyShow.

AVAILABLE ACTIONS:
- Search and book movie tickets
- Book event tickets
- Book plays/shows
- Select seats
- Apply offers

Help users book entertainment tickets.`,
		FormMappings: map[string]string{
			"search":   `input[placeholder*="Search"]`,
			"location": `.gmjPR input`,
		},
	},

	"olacabs.com": {
		Domain:       "cab_booking",
		Name:         "Ola Cabs",
		Capabilities: []string{"book_cab", "book_rental", "book_outstation"},
		SystemPrompt: `You are helping book a cab on Ola.

AVAILABLE ACTIONS:
- Book immediate cab ride
- Schedule a ride
- Book rental cabs
- Book outstation trips`,
		FormMappings: map[string]string{
			"pickup": `#pickup-address`,
			"drop":   `#drop-address`,
		},
	},

	"uber.com": {
		Domain:       "cab_booking",
		Name:         "Uber",
		Capabilities: []string{"book_cab", "book_rental"},
		SystemPrompt: `You are helping book a ride on Uber.

AVAILABLE ACTIONS:
- Book a ride
- Schedule a trip
- Book Uber Rentals`,
		FormMappings: map[string]string{
			"pickup": `input[data-testid="pickup-input"]`,
			"drop":   `input[data-testid="destination-input"]`,
		},
	},

	"google.com": {
		Domain:       "search",
		Name:         "Google Search",
		Capabilities: []string{"search", "navigate"},
		SystemPrompt: `You are helping the user search on Google.

AVAILABLE ACTIONS:
- Perform web searches
- Navigate to results
- Use specialized searches (Images, Maps, News)`,
		FormMappings: map[string]string{
			"search": `input[name="q"], textarea[name="q"]`,
		},
	},
}

// DefaultConfig is used for websites without a dedicated configuration
var DefaultConfig = SiteConfig{
	Domain:       "general",
	Name:         "Unknown Website",
	Capabilities: []string{"navigate", "search", "fill_form", "click"},
	SystemPrompt: `You are a general-purpose web navigation assistant.

CAPABILITIES:
- Navigate to pages and sections
- Fill forms
- Click buttons and links
- Read and summarize page content
- Search within the website

Analyze the current page and help the user accomplish their goal.
Identify interactive elements and guide the user.`,
	FormMappings: map[string]string{},
}
