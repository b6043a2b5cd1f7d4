package db_models

import "github.com/google/uuid"

// Journey is a saved itinerary. Dates are unix seconds at Algiers midnight.
type Journey struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	Description string `gorm:"type:text"`
	StartDate   int64
	EndDate     *int64
	Location    string
	IsShared    bool
	IsCompleted bool

	TripType        string
	GroupSize       int
	Currency        string `gorm:"size:3"`
	EstimatedTotal  float64
	ConfidenceScore float64
	Seed            int64

	Days []JourneyDay
}
