package planner

import "time"

// TripParameters is the immutable input of one generation request.
type TripParameters struct {
	StartDate               time.Time `json:"start_date"`
	EndDate                 time.Time `json:"end_date"`
	Budget                  float64   `json:"budget"` // per person
	Currency                string    `json:"currency"`
	GroupSize               int       `json:"group_size"`
	TripType                string    `json:"trip_type"`
	Interests               []string  `json:"interests"`
	DestinationPreference   string    `json:"destination_preference,omitempty"`
	TravelStyle             string    `json:"travel_style,omitempty"`
	AccommodationPreference string    `json:"accommodation_preference,omitempty"`
	ActivityLevel           string    `json:"activity_level,omitempty"`
	SpecialRequirements     string    `json:"special_requirements,omitempty"`
	DietaryRestrictions     string    `json:"dietary_restrictions,omitempty"`
}

// DurationDays counts calendar days, both endpoints included.
func (p TripParameters) DurationDays() int {
	return daysBetween(p.StartDate, p.EndDate) + 1
}

// Place is a read-only catalog entry supplied by the caller.
type Place struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category,omitempty"`
	Province      string   `json:"province,omitempty"`
	District      string   `json:"district,omitempty"`
	Municipality  string   `json:"municipality,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	FeedbackCount int      `json:"feedback_count"`
}

// Locality is the most specific geographic name known for the place.
func (p Place) Locality() string {
	switch {
	case p.District != "":
		return p.District
	case p.Municipality != "":
		return p.Municipality
	case p.Province != "":
		return p.Province
	}
	return p.Name
}

// ActivitySlot is one (day, time window) unit before a place and a cost are bound to it.
type ActivitySlot struct {
	DayNumber    int
	Window       TimeWindow
	ActivityType string
}

type PlannedActivity struct {
	PlaceID         string  `json:"place_id"`
	PlaceName       string  `json:"place_name"`
	ActivityType    string  `json:"activity_type"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	DurationMinutes int     `json:"duration_minutes"`
	EstimatedCost   float64 `json:"estimated_cost"` // per person
	Notes           string  `json:"notes"`
}

type DailyPlan struct {
	DayNumber   int               `json:"day_number"`
	Date        time.Time         `json:"date"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Activities  []PlannedActivity `json:"activities"`
}

// GeneratedItinerary is the final output. It has no behavior and can be serialized as is.
type GeneratedItinerary struct {
	Title                   string          `json:"title"`
	Description             string          `json:"description"`
	Currency                string          `json:"currency"`
	DurationDays            int             `json:"duration_days"`
	DailyPlans              []DailyPlan     `json:"daily_plans"`
	ConfidenceScore         float64         `json:"confidence_score"`
	EstimatedTotalCost      float64         `json:"estimated_total_cost"`
	RecommendedDestinations []string        `json:"recommended_destinations"`
	Budget                  BudgetBreakdown `json:"budget"`
}

func daysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}
