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

const geoapifyBaseURL = "https://api.geoapify.com/v2/places"

type GeoapifyAdapter struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

func NewGeoapifyAdapter() *GeoapifyAdapter {
	return &GeoapifyAdapter{
		APIKey:  os.Getenv("GEOAPIFY_API_KEY"),
		BaseURL: geoapifyBaseURL,
		HTTP:    newHTTPClient(),
	}
}

func (a *GeoapifyAdapter) Name() string {
	return moods.ProviderGeoapify
}

func (a *GeoapifyAdapter) Search(ctx context.Context, q Query) ([]response_models.Place, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}

	categories := q.Categories
	if len(categories) == 0 {
		categories = moods.GeoapifyDefaultCategories
	}

	params := url.Values{}
	params.Set("apiKey", a.APIKey)
	params.Set("categories", strings.Join(categories, ","))
	params.Set("limit", strconv.Itoa(limit))
	if q.Text != "" {
		params.Set("text", q.Text)
	}
	if q.Location != nil {
		// 5km search circle around the bias point.
		params.Set("filter", fmt.Sprintf("circle:%f,%f,5000", q.Location.Longitude, q.Location.Latitude))
		params.Set("bias", fmt.Sprintf("proximity:%f,%f", q.Location.Longitude, q.Location.Latitude))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geoapify http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("geoapify bad status: %s", resp.Status)
	}

	var payload provider_models.GeoapifySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("geoapify decode: %w", err)
	}

	places := make([]response_models.Place, 0, len(payload.Features))
	for _, f := range payload.Features {
		if f.Properties.PlaceID == "" && f.Properties.Name == "" && f.Properties.Formatted == "" {
			continue
		}
		places = append(places, mapGeoapifyPlace(f.Properties))
	}
	return places, nil
}

func mapGeoapifyPlace(p provider_models.GeoapifyProperties) response_models.Place {
	name := p.Name
	if name == "" {
		name = p.AddressLine1
	}
	if name == "" {
		// First segment of the formatted address is the closest thing
		// to a name Geoapify has left to offer.
		name = strings.TrimSpace(strings.SplitN(p.Formatted, ",", 2)[0])
	}

	category := "Place"
	if len(p.Categories) > 0 {
		category = moods.FriendlyCategory(p.Categories[0])
	}

	description := p.Datasource.Raw.Description
	if description == "" {
		description = fmt.Sprintf("%s is an interesting place in the %s category.", name, category)
	}

	address := p.Formatted
	if address == "" {
		address = "Address not available"
	}

	return response_models.Place{
		ID:            p.PlaceID,
		Name:          name,
		Category:      category,
		Rating:        nil, // the places endpoint carries no ratings
		Description:   description,
		Address:       address,
		ImageURL:      PlaceholderImageURL,
		Latitude:      p.Lat,
		Longitude:     p.Lon,
		MatchingMoods: moods.CategoriesToMoods(p.Categories),
	}
}
