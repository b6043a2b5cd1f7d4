package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"myguide/internal/models/request_models"
	"myguide/internal/services"
	"myguide/pkg/utils"
)

type RecommendationController struct {
	recommendationService services.RecommendationServiceInterface
}

func NewRecommendationController(recommendationService services.RecommendationServiceInterface) *RecommendationController {
	return &RecommendationController{
		recommendationService: recommendationService,
	}
}

// GetRecommendations godoc
// @Summary Get trip recommendations
// @Description Suggest trip ideas from the user's history, top rated places and trending trip types
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param limit query int false "Maximum number of recommendations" default(5) minimum(1) maximum(20)
// @Success 200 {array} response_models.TripRecommendationResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/recommendations [get]
func (r *RecommendationController) GetRecommendations(c *gin.Context) {
	var q request_models.RecommendationQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid limit (must be 1-20)")
		return
	}

	recs, err := r.recommendationService.GetRecommendations(c.Request.Context(), c.GetString("user_id"), q.Limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, recs, "Recommendations fetched successfully")
}
