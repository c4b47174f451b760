package provider_models

// Response shapes for the Geoapify Places v2 endpoint (GeoJSON feature
// collection).

type GeoapifySearchResponse struct {
	Features []GeoapifyFeature `json:"features"`
}

type GeoapifyFeature struct {
	Properties GeoapifyProperties `json:"properties"`
}

type GeoapifyProperties struct {
	PlaceID      string             `json:"place_id"`
	Name         string             `json:"name"`
	AddressLine1 string             `json:"address_line1"`
	Categories   []string           `json:"categories"`
	Formatted    string             `json:"formatted"`
	Lat          float64            `json:"lat"`
	Lon          float64            `json:"lon"`
	Datasource   GeoapifyDatasource `json:"datasource"`
}

type GeoapifyDatasource struct {
	Raw GeoapifyRawProperties `json:"raw"`
}

type GeoapifyRawProperties struct {
	Description string `json:"description"`
}
