package provider_models

// Response shapes for the OpenCage forward geocoding endpoint. OpenCage is a
// geocoder, not a place search API, so there is no stable place ID, no rating
// and no category vocabulary beyond the _type/_category component hints.

type OpenCageSearchResponse struct {
	Results []OpenCageResult `json:"results"`
}

type OpenCageResult struct {
	Components  OpenCageComponents  `json:"components"`
	Formatted   string              `json:"formatted"`
	Geometry    OpenCageLatLng      `json:"geometry"`
	Annotations OpenCageAnnotations `json:"annotations"`
}

type OpenCageComponents struct {
	Type        string `json:"_type"`
	Category    string `json:"_category"`
	Amenity     string `json:"amenity"`
	Shop        string `json:"shop"`
	Tourism     string `json:"tourism"`
	Historic    string `json:"historic"`
	Building    string `json:"building"`
	Road        string `json:"road"`
	HouseNumber string `json:"house_number"`
	Suburb      string `json:"suburb"`
	City        string `json:"city"`
	State       string `json:"state"`
	Postcode    string `json:"postcode"`
	Country     string `json:"country"`
}

type OpenCageLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type OpenCageAnnotations struct {
	Geohash string `json:"geohash"`
}
