package repositories

import (
	"context"

	"gorm.io/gorm"

	"myguide/internal/models/db_models"
)

type ProvinceRepository interface {
	GetListOfProvinces(ctx context.Context, page int, pageSize int) ([]db_models.Province, error)
}

type provinceRepository struct {
	db *gorm.DB
}

func NewProvinceRepository(db *gorm.DB) ProvinceRepository {
	return &provinceRepository{db: db}
}

func (p *provinceRepository) GetListOfProvinces(ctx context.Context, page int, pageSize int) ([]db_models.Province, error) {
	var provinces []db_models.Province
	err := p.db.WithContext(ctx).
		Preload("Districts", func(db *gorm.DB) *gorm.DB {
			return db.Order("name")
		}).
		Order("name").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&provinces).Error
	if err != nil {
		return nil, err
	}
	return provinces, nil
}
