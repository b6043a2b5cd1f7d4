package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"myguide/internal/models/request_models"
	"myguide/internal/services"
	"myguide/pkg/utils"
)

type ProvincesController struct {
	provinceService services.ProvinceServiceInterface
}

func NewProvincesController(provinceService services.ProvinceServiceInterface) *ProvincesController {
	return &ProvincesController{
		provinceService: provinceService,
	}
}

// GetAllProvinces godoc
// @Summary Get all provinces
// @Description Fetch a paginated list of provinces with their districts, usable as destination preferences
// @Tags Provinces
// @Accept json
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 5, max: 100)"
// @Success 200 {array} response_models.ProvinceResponse
// @Failure 400 {object} utils.APIResponse
// @Router /provinces [get]
func (p *ProvincesController) GetAllProvinces(c *gin.Context) {
	var q request_models.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	provinces, err := p.provinceService.GetAllProvinces(c.Request.Context(), q.Page, q.PageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, provinces, "Provinces fetched successfully")
}
