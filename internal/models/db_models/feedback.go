package db_models

import "github.com/google/uuid"

// PlaceFeedback ratings drive destination ranking: average rating first,
// then the number of reviews.
type PlaceFeedback struct {
	BaseModel
	PlaceID uuid.UUID `gorm:"type:uuid;index;not null"`
	UserID  uuid.UUID `gorm:"type:uuid;not null"`
	Rating  int       `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	Comment string    `gorm:"type:text"`
}
