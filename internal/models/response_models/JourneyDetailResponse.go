package response_models

import (
	"github.com/google/uuid"
)

// Top-level payload returned to FE
type JourneyDetailResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Location        string    `json:"location,omitempty"`
	StartDate       string    `json:"start_date"`    // YYYY-MM-DD
	EndDate         string    `json:"end_date"`      // YYYY-MM-DD
	DurationDays    int       `json:"duration_days"` // inclusive
	IsShared        bool      `json:"is_shared"`
	IsCompleted     bool      `json:"is_completed"`
	TripType        string    `json:"trip_type,omitempty"`
	GroupSize       int       `json:"group_size"`
	Currency        string    `json:"currency,omitempty"`
	EstimatedTotal  float64   `json:"estimated_total_cost"`
	ConfidenceScore float64   `json:"confidence_score"`

	// Quick stats
	TotalDays       int `json:"total_days"`
	TotalActivities int `json:"total_activities"`

	Days []JourneyDayResponse `json:"days"`
}

type JourneyDayResponse struct {
	ID          uuid.UUID               `json:"id"`
	DayNumber   int                     `json:"day_number"`
	Date        string                  `json:"date"` // YYYY-MM-DD
	Title       string                  `json:"title,omitempty"`
	Description string                  `json:"description,omitempty"`
	Activities  []JourneyActivityDetail `json:"activities"`
}

type JourneyActivityDetail struct {
	ID              uuid.UUID     `json:"id"`
	StartTime       string        `json:"start_time"` // HH:MM
	EndTime         string        `json:"end_time,omitempty"`
	DurationMinutes int           `json:"duration_minutes"`
	ActivityType    string        `json:"activity_type"`
	EstimatedCost   float64       `json:"estimated_cost"`
	Notes           string        `json:"notes,omitempty"`
	SelectedPlace   *PlaceSummary `json:"selected_place,omitempty"`
}

// Minimal place info that's useful on UI
type PlaceSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude,omitempty"`
	Longitude float64   `json:"longitude,omitempty"`
	Status    string    `json:"status,omitempty"`
}
