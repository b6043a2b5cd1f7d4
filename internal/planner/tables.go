package planner

import "github.com/pkg/errors"

type TimeWindow struct {
	Start string `yaml:"start" json:"start"` // HH:MM
	End   string `yaml:"end" json:"end"`
}

type KeywordTags struct {
	Keyword string   `yaml:"keyword"`
	Tags    []string `yaml:"tags"`
}

type KeywordFactor struct {
	Keyword string  `yaml:"keyword"`
	Factor  float64 `yaml:"factor"`
}

type KeywordsFactor struct {
	Keywords []string `yaml:"keywords"`
	Factor   float64  `yaml:"factor"`
}

type KeywordsNote struct {
	Keywords []string `yaml:"keywords"`
	Note     string   `yaml:"note"`
}

// Tables is the heuristic data the algorithms read. Slices are ordered on
// purpose: the first matching entry wins and iteration order must be stable.
type Tables struct {
	TripTypeTags        map[string][]string `yaml:"trip_type_tags"`
	DefaultTripTypeTags []string            `yaml:"default_trip_type_tags"`
	TravelStyleTags     []KeywordTags       `yaml:"travel_style_tags"`
	InterestAliases     map[string]string   `yaml:"interest_aliases"`

	TagCategories        map[string][]string `yaml:"tag_categories"`
	AcceptableCategories []string            `yaml:"acceptable_categories"`
	LocationAliases      map[string]string   `yaml:"location_aliases"`

	ActivitiesPerLevel   map[string]int       `yaml:"activities_per_level"`
	DefaultActivityCount int                  `yaml:"default_activity_count"`
	TimeWindows          map[int][]TimeWindow `yaml:"time_windows"`
	FullDayWindow        TimeWindow           `yaml:"full_day_window"`

	BaseCosts              map[string]float64 `yaml:"base_costs"`
	DefaultBaseCost        float64            `yaml:"default_base_cost"`
	CategoryMultipliers    []KeywordFactor    `yaml:"category_multipliers"`
	RequirementMultipliers []KeywordsFactor   `yaml:"requirement_multipliers"`
	FoodActivityTypes      []string           `yaml:"food_activity_types"`
	DietaryKeywords        []string           `yaml:"dietary_keywords"`
	DietaryMultiplier      float64            `yaml:"dietary_multiplier"`

	NoteTemplates    map[string]string `yaml:"note_templates"`
	DefaultNote      string            `yaml:"default_note"`
	RequirementNotes []KeywordsNote    `yaml:"requirement_notes"`
	DietaryNote      string            `yaml:"dietary_note"`

	DayThemes          map[string][]string `yaml:"day_themes"`
	DefaultThemeKey    string              `yaml:"default_theme_key"`
	ArrivalDescription string              `yaml:"arrival_description"`
	DayDescription     string              `yaml:"day_description"`
	EmptyDayDesc       string              `yaml:"empty_day_description"`

	TripTitles        map[string]string `yaml:"trip_titles"`
	DefaultTripTitle  string            `yaml:"default_trip_title"`
	TripDescriptions  map[string]string `yaml:"trip_descriptions"`
	BaseDescription   string            `yaml:"base_description"`
	InterestsSentence string            `yaml:"interests_sentence"`
	GroupSentence     string            `yaml:"group_sentence"`
}

func (t Tables) Validate() error {
	if t.DefaultActivityCount < 1 {
		return errors.Wrap(ErrInvalidConfig, "default_activity_count must be positive")
	}
	for level, n := range t.ActivitiesPerLevel {
		if n < 1 {
			return errors.Wrapf(ErrInvalidConfig, "activities_per_level[%s] must be positive", level)
		}
	}
	if len(t.DefaultTripTypeTags) == 0 {
		return errors.Wrap(ErrInvalidConfig, "default_trip_type_tags must not be empty")
	}
	if t.FullDayWindow.Start == "" || t.FullDayWindow.End == "" {
		return errors.Wrap(ErrInvalidConfig, "full_day_window is required")
	}
	return nil
}

func DefaultTables() Tables {
	return Tables{
		TripTypeTags: map[string][]string{
			"adventure":   {"adventure", "nature", "sports", "sightseeing"},
			"cultural":    {"cultural", "historical", "religious", "sightseeing"},
			"relaxation":  {"relaxation", "nature", "food_and_drink", "sightseeing"},
			"family":      {"sightseeing", "entertainment", "cultural", "nature"},
			"business":    {"sightseeing", "food_and_drink", "cultural", "shopping"},
			"romantic":    {"sightseeing", "relaxation", "food_and_drink", "cultural"},
			"solo":        {"sightseeing", "cultural", "adventure", "photography"},
			"group":       {"sightseeing", "entertainment", "adventure", "food_and_drink"},
			"historical":  {"historical", "cultural", "religious", "sightseeing"},
			"culinary":    {"food_and_drink", "shopping", "cultural", "sightseeing"},
			"photography": {"photography", "nature", "sightseeing", "historical"},
		},
		DefaultTripTypeTags: []string{"sightseeing", "adventure", "cultural", "relaxation"},
		TravelStyleTags: []KeywordTags{
			{Keyword: "heritage", Tags: []string{"cultural", "historical"}},
			{Keyword: "cultur", Tags: []string{"cultural"}},
			{Keyword: "histor", Tags: []string{"historical"}},
			{Keyword: "adventur", Tags: []string{"adventure", "nature"}},
			{Keyword: "outdoor", Tags: []string{"nature", "sports"}},
			{Keyword: "relax", Tags: []string{"relaxation", "nature"}},
			{Keyword: "luxury", Tags: []string{"relaxation", "food_and_drink", "shopping"}},
			{Keyword: "budget", Tags: []string{"nature", "sightseeing"}},
			{Keyword: "food", Tags: []string{"food_and_drink"}},
			{Keyword: "nightlife", Tags: []string{"entertainment"}},
			{Keyword: "spiritual", Tags: []string{"religious"}},
		},
		InterestAliases: map[string]string{
			"history":          "historical",
			"historical sites": "historical",
			"heritage":         "historical",
			"monuments":        "historical",
			"culture":          "cultural",
			"museums":          "cultural",
			"art":              "cultural",
			"food":             "food_and_drink",
			"cuisine":          "food_and_drink",
			"local food":       "food_and_drink",
			"restaurants":      "food_and_drink",
			"hiking":           "adventure",
			"beaches":          "relaxation",
			"beach":            "relaxation",
			"wellness":         "relaxation",
			"mosques":          "religious",
			"religion":         "religious",
			"markets":          "shopping",
			"nightlife":        "entertainment",
			"photos":           "photography",
			"parks":            "nature",
			"mountains":        "nature",
		},

		TagCategories: map[string][]string{
			"adventure":      {"adventure", "nature", "sports", "mountain"},
			"cultural":       {"cultural", "historical", "museum"},
			"nature":         {"nature", "natural", "park", "mountain", "beach"},
			"historical":     {"historical", "heritage", "monument"},
			"religious":      {"religious", "temple", "monastery", "mosque", "church"},
			"food_and_drink": {"restaurant", "cafe", "local_cuisine"},
			"shopping":       {"shopping", "market", "bazaar"},
			"relaxation":     {"spa", "resort", "beach"},
			"entertainment":  {"entertainment", "nightlife", "festival"},
			"sightseeing":    {"landmark", "monument", "viewpoint", "square"},
			"photography":    {"viewpoint", "landmark", "natural"},
			"sports":         {"sports", "stadium"},
		},
		AcceptableCategories: []string{
			"museum", "cultural", "historical", "entertainment", "restaurant", "landmark",
			"market", "religious", "park", "square", "monument",
		},
		LocationAliases: map[string]string{
			"algiers":    "alger",
			"al djazair": "alger",
			"el djazair": "alger",
			"wahran":     "oran",
			"qacentina":  "constantine",
			"ksantina":   "constantine",
			"tilimsen":   "tlemcen",
			"bona":       "annaba",
			"bougie":     "bejaia",
			"setif":      "setif",
			"ghardaia":   "ghardaia",
		},

		ActivitiesPerLevel:   map[string]int{"low": 2, "moderate": 3, "high": 4},
		DefaultActivityCount: 3,
		TimeWindows: map[int][]TimeWindow{
			2: {{"09:00", "12:00"}, {"14:00", "17:00"}},
			3: {{"09:00", "11:30"}, {"13:00", "15:30"}, {"16:00", "18:00"}},
			4: {{"09:00", "11:00"}, {"11:30", "13:30"}, {"14:30", "16:30"}, {"17:00", "19:00"}},
		},
		FullDayWindow: TimeWindow{"09:00", "17:00"},

		BaseCosts: map[string]float64{
			"sightseeing":    20,
			"adventure":      50,
			"cultural":       15,
			"relaxation":     30,
			"food_and_drink": 25,
			"shopping":       40,
			"nature":         10,
			"historical":     15,
			"religious":      5,
			"entertainment":  35,
			"sports":         45,
			"photography":    10,
		},
		DefaultBaseCost: 25,
		CategoryMultipliers: []KeywordFactor{
			{Keyword: "museum", Factor: 1.2},
			{Keyword: "restaurant", Factor: 1.5},
			{Keyword: "hotel", Factor: 2.0},
			{Keyword: "shopping", Factor: 1.3},
			{Keyword: "entertainment", Factor: 1.4},
			{Keyword: "adventure", Factor: 1.6},
			{Keyword: "spa", Factor: 1.8},
		},
		RequirementMultipliers: []KeywordsFactor{
			{Keywords: []string{"private", "guide"}, Factor: 1.5},
			{Keywords: []string{"luxury", "premium"}, Factor: 1.8},
		},
		FoodActivityTypes: []string{"food_and_drink", "meal", "culinary", "dining"},
		DietaryKeywords: []string{
			"halal", "vegetarian", "vegan", "gluten", "kosher", "lactose", "dairy", "nut", "allerg",
		},
		DietaryMultiplier: 1.2,

		NoteTemplates: map[string]string{
			"sightseeing":    "Explore the beautiful %s and take in the scenic views.",
			"adventure":      "Experience thrilling adventures at %s.",
			"cultural":       "Discover the rich cultural heritage of %s.",
			"relaxation":     "Relax and unwind at the peaceful %s.",
			"food_and_drink": "Enjoy local cuisine and specialties near %s.",
			"shopping":       "Browse local markets and shops around %s.",
			"nature":         "Connect with nature and enjoy the natural beauty of %s.",
			"historical":     "Learn about the fascinating history of %s.",
			"religious":      "Experience the spiritual atmosphere of %s.",
			"entertainment":  "Enjoy entertainment and local performances near %s.",
			"sports":         "Engage in sports activities at %s.",
			"photography":    "Capture stunning photographs at the picturesque %s.",
		},
		DefaultNote: "Visit and explore %s.",
		RequirementNotes: []KeywordsNote{
			{Keywords: []string{"wheelchair", "accessib", "mobility"}, Note: "Check step-free access before you go."},
			{Keywords: []string{"guide"}, Note: "A local guide is recommended for this visit."},
			{Keywords: []string{"private"}, Note: "Private tour arrangements are available on request."},
		},
		DietaryNote: "Ask for %s options when ordering.",

		DayThemes: map[string][]string{
			"adventure":   {"Arrival & Exploration", "Mountain Adventures", "Water Activities", "Cultural Discovery", "Nature Trails", "Local Experiences", "Departure"},
			"cultural":    {"Arrival & City Tour", "Historical Sites", "Museums & Galleries", "Local Traditions", "Cultural Immersion", "Art & Crafts", "Departure"},
			"relaxation":  {"Arrival & Settling In", "Spa & Wellness", "Nature Walks", "Peaceful Exploration", "Leisure Activities", "Final Relaxation", "Departure"},
			"family":      {"Arrival & Fun Start", "Family Adventures", "Educational Visits", "Outdoor Activities", "Entertainment", "Memory Making", "Departure"},
			"romantic":    {"Arrival & Sunset Stroll", "Hidden Corners", "Flavors for Two", "Scenic Escapes", "Slow Morning", "Farewell Dinner", "Departure"},
			"business":    {"Arrival & Orientation", "City Highlights", "Local Flavors", "Markets & Shopping", "Free Afternoon", "Departure"},
			"historical":  {"Arrival & Old Town", "Ancient Sites", "Museums & Archives", "Monuments", "Heritage Trail", "Departure"},
			"culinary":    {"Arrival & First Tastes", "Market Morning", "Street Food Trail", "Traditional Kitchens", "Sweet Treats", "Departure"},
			"photography": {"Arrival & Golden Hour", "Architecture", "Landscapes", "Street Life", "Night Shots", "Departure"},
		},
		DefaultThemeKey:    "adventure",
		ArrivalDescription: "Start your journey with exciting exploration and get acquainted with the local area.",
		DayDescription:     "Enjoy a day filled with %s activities.",
		EmptyDayDesc:       "A wonderful day of exploration and discovery awaits.",

		TripTitles: map[string]string{
			"adventure":  "%[1]d-Day Adventure in %[2]s",
			"cultural":   "Cultural Discovery: %[1]d Days in %[2]s",
			"relaxation": "Relaxing %[1]d-Day Getaway to %[2]s",
			"family":     "Family Fun: %[1]d Days in %[2]s",
			"business":   "Business & Leisure: %[1]d Days in %[2]s",
			"romantic":   "Romantic %[1]d-Day Escape to %[2]s",
			"solo":       "Solo Journey: %[1]d Days Exploring %[2]s",
			"group":      "Group Adventure: %[1]d Days in %[2]s",
		},
		DefaultTripTitle: "%[1]d-Day Trip to %[2]s",
		TripDescriptions: map[string]string{
			"adventure":  "Experience thrilling adventures and explore stunning natural landscapes.",
			"cultural":   "Immerse yourself in rich cultural heritage and local traditions.",
			"relaxation": "Unwind and rejuvenate in peaceful, scenic locations.",
			"family":     "Enjoy family-friendly activities and create lasting memories together.",
		},
		BaseDescription:   "Discover the beauty of %[2]s in this carefully planned %[1]d-day itinerary.",
		InterestsSentence: "This trip focuses on %s experiences.",
		GroupSentence:     "Perfect for groups of %d people.",
	}
}
