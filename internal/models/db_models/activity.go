package db_models

import (
	"time"

	"github.com/google/uuid"
)

type JourneyDay struct {
	BaseModel
	JourneyID   uuid.UUID `gorm:"type:uuid;index"`
	Date        time.Time
	DayNumber   int
	Title       string
	Description string

	Activities []JourneyActivity
}

type JourneyActivity struct {
	BaseModel
	JourneyDayID    uuid.UUID `gorm:"type:uuid;index"`
	Time            time.Time
	EndTime         *time.Time
	ActivityType    string
	SelectedPlaceID uuid.UUID `gorm:"type:uuid"`
	DurationMinutes int
	EstimatedCost   float64
	Notes           string

	SelectedPlace *Place `gorm:"foreignKey:SelectedPlaceID"`
}
