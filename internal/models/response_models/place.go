package response_models

// Place is the normalized record every provider adapter maps into. Rating is
// nil for providers that have no rating concept, UserFeedback is nil until a
// stored liked/disliked entry is overlaid.
type Place struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	Rating          *float64 `json:"rating"`
	Description     string   `json:"description"`
	Address         string   `json:"address"`
	ImageURL        string   `json:"image_url"`
	Latitude        float64  `json:"latitude"`
	Longitude       float64  `json:"longitude"`
	MatchingMoods   []string `json:"matching_moods"`
	MatchPercentage int      `json:"match_percentage,omitempty"`
	UserFeedback    *string  `json:"user_feedback"`
}
