package request_models

type SubmitFeedbackRequest struct {
	PlaceID string `json:"place_id" binding:"required"`
	UserID  string `json:"user_id" binding:"required"`
	Liked   *bool  `json:"liked" binding:"required"`
}
