package response_models

type Review struct {
	ID          string `json:"id"`
	PlaceID     string `json:"place_id"`
	UserID      string `json:"user_id"`
	Text        string `json:"text"`
	Rating      int    `json:"rating"`
	Date        string `json:"date"`
	IsAnonymous bool   `json:"is_anonymous"`
}
