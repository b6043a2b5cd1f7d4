package services

import (
	"context"

	"myguide/internal/models/response_models"
	"myguide/internal/repositories"
	"myguide/pkg/utils"
)

type ProvinceServiceInterface interface {
	GetAllProvinces(ctx context.Context, page int, pageSize int) ([]response_models.ProvinceResponse, error)
}

type ProvinceService struct {
	provinceRepository repositories.ProvinceRepository
}

func NewProvinceService(provinceRepository repositories.ProvinceRepository) ProvinceServiceInterface {
	return &ProvinceService{
		provinceRepository: provinceRepository,
	}
}

func (p *ProvinceService) GetAllProvinces(ctx context.Context, page int, pageSize int) ([]response_models.ProvinceResponse, error) {
	if page < 1 {
		return nil, utils.ErrInvalidPage
	}
	if pageSize < 1 || pageSize > 100 {
		return nil, utils.ErrInvalidPageSize
	}

	provinces, err := p.provinceRepository.GetListOfProvinces(ctx, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	provinceResponse := make([]response_models.ProvinceResponse, 0, len(provinces))
	for _, province := range provinces {
		districts := make([]string, 0, len(province.Districts))
		for _, d := range province.Districts {
			districts = append(districts, d.Name)
		}
		provinceResponse = append(provinceResponse, response_models.ProvinceResponse{
			ID:        province.ID.String(),
			Name:      province.Name,
			Districts: districts,
		})
	}

	return provinceResponse, nil
}
