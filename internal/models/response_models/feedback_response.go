package response_models

type FeedbackResponse struct {
	ID        string `json:"id"`
	PlaceID   string `json:"place_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment,omitempty"`
	CreatedAt string `json:"created_at"`
}
