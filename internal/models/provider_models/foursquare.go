package provider_models

// Response shapes for the Foursquare Places v3 search endpoint. Only the
// fields the adapter maps are declared.

type FoursquareSearchResponse struct {
	Results []FoursquarePlace `json:"results"`
}

type FoursquarePlace struct {
	FsqID       string               `json:"fsq_id"`
	Name        string               `json:"name"`
	Categories  []FoursquareCategory `json:"categories"`
	Rating      float64              `json:"rating"` // 0-10 scale, 0 when absent
	Description string               `json:"description"`
	Location    FoursquareLocation   `json:"location"`
	Geocodes    FoursquareGeocodes   `json:"geocodes"`
}

type FoursquareCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type FoursquareLocation struct {
	Address          string `json:"address"`
	Locality         string `json:"locality"`
	Region           string `json:"region"`
	Postcode         string `json:"postcode"`
	Country          string `json:"country"`
	FormattedAddress string `json:"formatted_address"`
}

type FoursquareGeocodes struct {
	Main FoursquareLatLng `json:"main"`
}

type FoursquareLatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
