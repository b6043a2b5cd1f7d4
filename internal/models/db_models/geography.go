package db_models

import "github.com/google/uuid"

// Province > District > Municipality. Places point at every level they know.
type Province struct {
	BaseModel
	Name      string `gorm:"uniqueIndex;not null"`
	Districts []District
	Places    []Place `gorm:"foreignKey:ProvinceID"`
}

type District struct {
	BaseModel
	ProvinceID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Name           string    `gorm:"not null"`
	Municipalities []Municipality
}

type Municipality struct {
	BaseModel
	DistrictID uuid.UUID `gorm:"type:uuid;index;not null"`
	Name       string    `gorm:"not null"`
}
