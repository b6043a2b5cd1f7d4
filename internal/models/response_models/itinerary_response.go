package response_models

import "myguide/internal/planner"

type ItineraryDraftResponse struct {
	DraftID   string                      `json:"draft_id"`
	Seed      int64                       `json:"seed"`
	ExpiresAt string                      `json:"expires_at"`
	Itinerary *planner.GeneratedItinerary `json:"itinerary"`
}

type DestinationResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      string   `json:"category,omitempty"`
	Province      string   `json:"province,omitempty"`
	District      string   `json:"district,omitempty"`
	Municipality  string   `json:"municipality,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	FeedbackCount int      `json:"feedback_count"`
}

type SavedJourneyResponse struct {
	JourneyID string `json:"journey_id"`
}
