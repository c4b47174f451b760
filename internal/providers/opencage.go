package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"moodtrip/internal/models/provider_models"
	"moodtrip/internal/models/response_models"
	"moodtrip/internal/moods"
)

const opencageBaseURL = "https://api.opencagedata.com/geocode/v1/json"

type OpenCageAdapter struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

func NewOpenCageAdapter() *OpenCageAdapter {
	return &OpenCageAdapter{
		APIKey:  os.Getenv("OPENCAGE_API_KEY"),
		BaseURL: opencageBaseURL,
		HTTP:    newHTTPClient(),
	}
}

func (a *OpenCageAdapter) Name() string {
	return moods.ProviderOpenCage
}

func (a *OpenCageAdapter) Search(ctx context.Context, q Query) ([]response_models.Place, error) {
	// OpenCage is a pure geocoder, it only answers free text.
	if q.Text == "" {
		return []response_models.Place{}, nil
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}

	params := url.Values{}
	params.Set("key", a.APIKey)
	params.Set("q", q.Text)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("no_annotations", "0")
	if q.Location != nil {
		params.Set("proximity", fmt.Sprintf("%f,%f", q.Location.Latitude, q.Location.Longitude))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("opencage http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("opencage bad status: %s", resp.Status)
	}

	var payload provider_models.OpenCageSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("opencage decode: %w", err)
	}

	places := make([]response_models.Place, 0, len(payload.Results))
	for _, r := range payload.Results {
		p := mapOpenCageResult(r)
		if p.Name == "" {
			continue
		}
		places = append(places, p)
	}
	return places, nil
}

func mapOpenCageResult(r provider_models.OpenCageResult) response_models.Place {
	name := opencageName(r)

	rawCategory := r.Components.Category
	if rawCategory == "" {
		rawCategory = r.Components.Type
	}
	category := moods.FriendlyCategory(rawCategory)

	// No stable place ID exists; fall back to the geohash annotation, then
	// to a synthesized name+rounded-coordinates key.
	id := r.Annotations.Geohash
	if id == "" {
		id = fmt.Sprintf("%s_%.4f_%.4f",
			strings.ToLower(strings.ReplaceAll(name, " ", "-")),
			r.Geometry.Lat, r.Geometry.Lng)
	}

	description := r.Formatted
	if description == "" {
		description = fmt.Sprintf("%s is an interesting place in the %s category.", name, category)
	}

	address := r.Formatted
	if address == "" {
		address = "Address not available"
	}

	return response_models.Place{
		ID:            id,
		Name:          name,
		Category:      category,
		Rating:        nil, // geocoders rate nothing
		Description:   description,
		Address:       address,
		ImageURL:      PlaceholderImageURL,
		Latitude:      r.Geometry.Lat,
		Longitude:     r.Geometry.Lng,
		MatchingMoods: moods.CategoriesToMoods([]string{r.Components.Category, r.Components.Type, r.Components.Amenity}),
	}
}

// opencageName picks the most specific present component, the way the
// formatted address is assembled most-specific first.
func opencageName(r provider_models.OpenCageResult) string {
	c := r.Components
	for _, candidate := range []string{c.Amenity, c.Shop, c.Tourism, c.Historic, c.Building} {
		if candidate != "" {
			return candidate
		}
	}
	if c.Road != "" {
		if c.HouseNumber != "" {
			return c.Road + " " + c.HouseNumber
		}
		return c.Road
	}
	if r.Formatted != "" {
		return strings.TrimSpace(strings.SplitN(r.Formatted, ",", 2)[0])
	}
	return ""
}
