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

const foursquareBaseURL = "https://api.foursquare.com/v3/places/search"

type FoursquareAdapter struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

func NewFoursquareAdapter() *FoursquareAdapter {
	return &FoursquareAdapter{
		APIKey:  os.Getenv("FOURSQUARE_API_KEY"),
		BaseURL: foursquareBaseURL,
		HTTP:    newHTTPClient(),
	}
}

func (a *FoursquareAdapter) Name() string {
	return moods.ProviderFoursquare
}

func (a *FoursquareAdapter) Search(ctx context.Context, q Query) ([]response_models.Place, error) {
	// Foursquare has nothing to search without a query or categories
	// (an unknown mood resolves to an empty category list).
	if q.Text == "" && len(q.Categories) == 0 {
		return []response_models.Place{}, nil
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 10
	}

	params := url.Values{}
	if q.Text != "" {
		params.Set("query", q.Text)
	}
	if len(q.Categories) > 0 {
		params.Set("categories", strings.Join(q.Categories, ","))
	}
	if q.Location != nil {
		params.Set("ll", fmt.Sprintf("%f,%f", q.Location.Latitude, q.Location.Longitude))
	}
	params.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", a.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := a.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("foursquare http error: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("foursquare bad status: %s", resp.Status)
	}

	var payload provider_models.FoursquareSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("foursquare decode: %w", err)
	}

	places := make([]response_models.Place, 0, len(payload.Results))
	for _, r := range payload.Results {
		if r.FsqID == "" && r.Name == "" {
			continue
		}
		places = append(places, mapFoursquarePlace(r))
	}
	return places, nil
}

func mapFoursquarePlace(r provider_models.FoursquarePlace) response_models.Place {
	rawCategories := make([]string, 0, len(r.Categories)*2)
	categoryName := ""
	for _, c := range r.Categories {
		rawCategories = append(rawCategories, strconv.Itoa(c.ID), c.Name)
		if categoryName == "" {
			categoryName = c.Name
		}
	}

	category := moods.FriendlyCategory(categoryName)

	var rating *float64
	if r.Rating > 0 {
		// Foursquare rates on a 0-10 scale.
		v := r.Rating / 2
		rating = &v
	}

	description := r.Description
	if description == "" {
		description = fmt.Sprintf("%s is an interesting place in the %s category.", r.Name, category)
	}

	return response_models.Place{
		ID:            r.FsqID,
		Name:          r.Name,
		Category:      category,
		Rating:        rating,
		Description:   description,
		Address:       foursquareAddress(r.Location),
		ImageURL:      PlaceholderImageURL,
		Latitude:      r.Geocodes.Main.Latitude,
		Longitude:     r.Geocodes.Main.Longitude,
		MatchingMoods: moods.CategoriesToMoods(rawCategories),
	}
}

func foursquareAddress(loc provider_models.FoursquareLocation) string {
	if loc.FormattedAddress != "" {
		return loc.FormattedAddress
	}

	parts := make([]string, 0, 5)
	for _, p := range []string{loc.Address, loc.Locality, loc.Region, loc.Postcode, loc.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return "Address not available"
	}
	return strings.Join(parts, ", ")
}
