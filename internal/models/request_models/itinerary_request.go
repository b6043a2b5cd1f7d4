package request_models

// GenerateItineraryRequest is the trip questionnaire. Dates are YYYY-MM-DD,
// budget is per person.
type GenerateItineraryRequest struct {
	StartDate               string   `json:"start_date" binding:"required"`
	EndDate                 string   `json:"end_date" binding:"required"`
	Budget                  float64  `json:"budget"`
	Currency                string   `json:"currency"`
	GroupSize               int      `json:"group_size"`
	TripType                string   `json:"trip_type" binding:"required"`
	Interests               []string `json:"interests"`
	DestinationPreference   string   `json:"destination_preference"`
	TravelStyle             string   `json:"travel_style"`
	AccommodationPreference string   `json:"accommodation_preference"`
	ActivityLevel           string   `json:"activity_level"`
	SpecialRequirements     string   `json:"special_requirements"`
	DietaryRestrictions     string   `json:"dietary_restrictions"`

	// Seed replays a previous generation exactly. Omit for a fresh plan.
	Seed *int64 `json:"seed,omitempty"`
}
