package request_models

// PageQuery is the page/pageSize pair shared by every list endpoint.
type PageQuery struct {
	Page     int `form:"page,default=1" binding:"min=1"`
	PageSize int `form:"pageSize,default=5" binding:"min=1,max=100"`
}

type RecommendationQuery struct {
	Limit int `form:"limit,default=5" binding:"min=1,max=20"`
}
