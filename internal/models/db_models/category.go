package db_models

// Category is the free-text place type ("Museum", "Traditional Restaurant")
// the itinerary engine matches trip preferences against.
type Category struct {
	BaseModel
	Name   string  `gorm:"unique;not null"`
	Places []Place `gorm:"foreignKey:CategoryID"`
}
