package db_models

import "github.com/google/uuid"

const PlaceStatusActive = "active"

type Place struct {
	BaseModel
	Name         string `gorm:"not null"`
	Description  string
	Latitude     float64
	Longitude    float64
	Status       string `gorm:"index;default:active"`
	OpeningHours string

	CategoryID     *uuid.UUID `gorm:"type:uuid;index"`
	ProvinceID     uuid.UUID  `gorm:"type:uuid;index;not null"`
	DistrictID     *uuid.UUID `gorm:"type:uuid;index"`
	MunicipalityID *uuid.UUID `gorm:"type:uuid;index"`

	Category     *Category
	Province     Province
	District     *District
	Municipality *Municipality
	Feedback     []PlaceFeedback
}
