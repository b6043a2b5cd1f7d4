package response_models

type RecommendedDestination struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	District string `json:"district"`
	Province string `json:"province"`
}

type TripRecommendationResponse struct {
	Title             string                   `json:"title"`
	Description       string                   `json:"description"`
	TripType          string                   `json:"trip_type"`
	Destinations      []RecommendedDestination `json:"destinations"`
	EstimatedBudget   float64                  `json:"estimated_budget"`
	EstimatedDuration int                      `json:"estimated_duration"`
	Reason            string                   `json:"reason"`
	ConfidenceScore   float64                  `json:"confidence_score"`
}
