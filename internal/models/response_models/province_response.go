package response_models

type ProvinceResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Districts []string `json:"districts"`
}
