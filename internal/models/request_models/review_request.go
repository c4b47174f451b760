package request_models

type AddReviewRequest struct {
	PlaceID string `json:"place_id" binding:"required"`
	UserID  string `json:"user_id" binding:"required"`
	Text    string `json:"text" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}
