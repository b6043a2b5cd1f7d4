package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"myguide/internal/models/db_models"
)

// CatalogRow is one active place flattened with its geography, category and
// feedback aggregate. Rating is nil when the place has no feedback.
type CatalogRow struct {
	ID            uuid.UUID
	Name          string
	Category      string
	Province      string
	District      string
	Municipality  string
	Rating        *float64
	FeedbackCount int
}

type PlaceRepository interface {
	ListCatalog(ctx context.Context) ([]CatalogRow, error)
}

type placeRepository struct {
	db *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) PlaceRepository {
	return &placeRepository{db: db}
}

// ListCatalog returns rows in insertion order; ranking is left to the engine.
func (r *placeRepository) ListCatalog(ctx context.Context) ([]CatalogRow, error) {
	var rows []CatalogRow
	err := r.db.WithContext(ctx).
		Table("places AS p").
		Select(`p.id,
			p.name,
			COALESCE(c.name, '') AS category,
			COALESCE(pr.name, '') AS province,
			COALESCE(d.name, '') AS district,
			COALESCE(m.name, '') AS municipality,
			AVG(f.rating) AS rating,
			COUNT(f.id) AS feedback_count`).
		Joins("LEFT JOIN categories c ON c.id = p.category_id AND c.deleted_at IS NULL").
		Joins("LEFT JOIN provinces pr ON pr.id = p.province_id AND pr.deleted_at IS NULL").
		Joins("LEFT JOIN districts d ON d.id = p.district_id AND d.deleted_at IS NULL").
		Joins("LEFT JOIN municipalities m ON m.id = p.municipality_id AND m.deleted_at IS NULL").
		Joins("LEFT JOIN place_feedbacks f ON f.place_id = p.id AND f.deleted_at IS NULL").
		Where("p.deleted_at IS NULL AND p.status = ?", db_models.PlaceStatusActive).
		Group("p.id, c.name, pr.name, d.name, m.name").
		Order("p.created_at, p.id").
		Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "list place catalog")
	}
	return rows, nil
}
