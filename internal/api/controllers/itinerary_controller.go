package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"myguide/internal/models/request_models"
	"myguide/internal/services"
	"myguide/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateItinerary godoc
// @Summary Generate an itinerary draft
// @Description Build a day-by-day itinerary with per-activity cost estimates from the trip questionnaire. The result is kept as a draft until saved; pass the returned seed back to regenerate the same plan.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip parameters"
// @Success 200 {object} response_models.ItineraryDraftResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Example {json} Request Body Example:
//
//	{
//	  "start_date": "2025-10-26",
//	  "end_date": "2025-10-29",
//	  "budget": 250,
//	  "currency": "USD",
//	  "group_size": 2,
//	  "trip_type": "cultural",
//	  "interests": ["photography", "historical sites"],
//	  "destination_preference": "Algiers",
//	  "activity_level": "moderate",
//	  "dietary_restrictions": "halal"
//	}
//
// @Router /itineraries/generate [post]
func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "start_date, end_date and trip_type are required")
		return
	}

	draft, err := i.itineraryService.Generate(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, draft, "Itinerary generated successfully")
}

// PreviewDestinations godoc
// @Summary Preview candidate destinations
// @Description Rank the places that would be considered for the given trip parameters without building a schedule
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip parameters"
// @Success 200 {array} response_models.DestinationResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/destinations [post]
func (i *ItineraryController) PreviewDestinations(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "start_date, end_date and trip_type are required")
		return
	}

	destinations, err := i.itineraryService.PreviewDestinations(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Destinations fetched successfully")
}

// SaveDraft godoc
// @Summary Save an itinerary draft
// @Description Persist a generated draft as a journey of the authenticated user
// @Tags Itinerary
// @Produce json
// @Param draftId path string true "Draft ID"
// @Success 200 {object} response_models.SavedJourneyResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/drafts/{draftId}/save [post]
func (i *ItineraryController) SaveDraft(c *gin.Context) {
	draftId := c.Param("draftId")
	if draftId == "" {
		utils.RespondError(c, http.StatusBadRequest, "Draft ID is required")
		return
	}

	saved, err := i.itineraryService.SaveDraft(c.Request.Context(), c.GetString("user_id"), draftId)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, saved, "Journey saved successfully")
}
