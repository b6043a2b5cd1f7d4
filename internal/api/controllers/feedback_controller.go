package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"myguide/internal/models/request_models"
	"myguide/internal/services"
	"myguide/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// AddFeedback godoc
// @Summary Rate a place
// @Description Add a 1-5 rating and optional comment for a place. Ratings feed the ranking of itinerary destinations.
// @Tags Feedback
// @Accept json
// @Produce json
// @Param placeId path string true "Place ID"
// @Param request body request_models.AddFeedbackRequest true "Feedback payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /places/{placeId}/feedback [post]
func (f *FeedbackController) AddFeedback(c *gin.Context) {
	var req request_models.AddFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	err := f.feedbackService.AddFeedback(c.Request.Context(), c.GetString("user_id"), c.Param("placeId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Feedback added successfully")
}

// ListFeedback godoc
// @Summary List feedback of a place
// @Description Get a paginated list of ratings for a place, newest first
// @Tags Feedback
// @Param placeId path string true "Place ID"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(5) minimum(1) maximum(100)
// @Success 200 {array} response_models.FeedbackResponse
// @Security BearerAuth
// @Router /places/{placeId}/feedback [get]
func (f *FeedbackController) ListFeedback(c *gin.Context) {
	var q request_models.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page or page size (must be 1-100)")
		return
	}

	feedbacks, err := f.feedbackService.GetFeedback(c.Request.Context(), c.Param("placeId"), q.Page, q.PageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feedbacks, "Feedback fetched successfully")
}
