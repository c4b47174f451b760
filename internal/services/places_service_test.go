package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"moodtrip/internal/models/db_models"
	"moodtrip/internal/models/response_models"
	"moodtrip/internal/providers"
)

type stubAdapter struct {
	name   string
	places []response_models.Place
	err    error
}

func (s *stubAdapter) Name() string { return s.name }

func (s *stubAdapter) Search(context.Context, providers.Query) ([]response_models.Place, error) {
	return s.places, s.err
}

type memUsageRepo struct {
	stats []db_models.UsageStat
}

func (m *memUsageRepo) CreateUsageStat(_ context.Context, stat *db_models.UsageStat) error {
	m.stats = append(m.stats, *stat)
	return nil
}

func (m *memUsageRepo) ListRecent(context.Context, int, int) ([]db_models.UsageStat, error) {
	return m.stats, nil
}

type fixedScorer struct{ value int }

func (f fixedScorer) Score(response_models.Place) int { return f.value }

func newTestService(adapters ...providers.Adapter) (*PlacesService, *memKV, *memUsageRepo) {
	kv := newMemKV()
	usage := &memUsageRepo{}
	svc := NewPlacesService(adapters, fixedScorer{value: 90}, NewFeedbackService(kv), usage)
	return svc.(*PlacesService), kv, usage
}

func TestRecommendPartialProviderFailure(t *testing.T) {
	working := &stubAdapter{name: "foursquare", places: []response_models.Place{
		place("fsq-1", "Cafe Uno", 10.96, -74.79),
	}}
	alsoWorking := &stubAdapter{name: "geoapify", places: []response_models.Place{
		place("geo-1", "Parque Dos", 10.97, -74.80),
	}}
	broken := &stubAdapter{name: "opencage", err: errors.New("connection refused")}

	svc, _, _ := newTestService(working, alsoWorking, broken)

	result, err := svc.Recommend(context.Background(), "relaxed", "user-1", nil)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "fsq-1", result[0].ID)
	assert.Equal(t, "geo-1", result[1].ID)
}

func TestRecommendTotalProviderFailure(t *testing.T) {
	svc, _, _ := newTestService(
		&stubAdapter{name: "foursquare", err: errors.New("down")},
		&stubAdapter{name: "geoapify", err: errors.New("down")},
		&stubAdapter{name: "opencage", err: errors.New("down")},
	)

	result, err := svc.Recommend(context.Background(), "happy", "user-1", nil)
	require.NoError(t, err, "total provider failure is an empty list, not an error")
	assert.Empty(t, result)
}

func TestRecommendDeduplicatesAcrossProviders(t *testing.T) {
	// Foursquare and Geoapify report the same venue under different IDs
	// with near-identical coordinates; Foursquare is queried first so its
	// record survives.
	fsq := &stubAdapter{name: "foursquare", places: []response_models.Place{
		place("fsq-1", "El Pibe", 10.96110, -74.79120),
	}}
	geo := &stubAdapter{name: "geoapify", places: []response_models.Place{
		place("geo-9", "el pibe", 10.96112, -74.79118),
	}}

	svc, _, _ := newTestService(fsq, geo)

	result, err := svc.Recommend(context.Background(), "hungry", "user-1", nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "fsq-1", result[0].ID)
}

func TestRecommendFeedbackOverlay(t *testing.T) {
	adapter := &stubAdapter{name: "foursquare", places: []response_models.Place{
		place("p1", "Liked Place", 1, 1),
		place("p2", "Unrated Place", 2, 2),
	}}

	svc, kv, _ := newTestService(adapter)
	ctx := context.Background()
	require.NoError(t, NewFeedbackService(kv).SaveFeedback(ctx, "user-1", "p1", true))

	result, err := svc.Recommend(ctx, "social", "user-1", nil)
	require.NoError(t, err)
	require.Len(t, result, 2)

	require.NotNil(t, result[0].UserFeedback)
	assert.Equal(t, "liked", *result[0].UserFeedback)
	assert.Nil(t, result[1].UserFeedback)
}

func TestRecommendAttachesScore(t *testing.T) {
	adapter := &stubAdapter{name: "foursquare", places: []response_models.Place{
		place("p1", "Somewhere", 1, 1),
	}}

	svc, _, _ := newTestService(adapter)

	result, err := svc.Recommend(context.Background(), "happy", "user-1", nil)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 90, result[0].MatchPercentage)
}

func TestRecommendRecordsUsage(t *testing.T) {
	adapter := &stubAdapter{name: "foursquare", places: []response_models.Place{
		place("p1", "Somewhere", 1, 1),
	}}
	broken := &stubAdapter{name: "geoapify", err: errors.New("down")}

	svc, _, usage := newTestService(adapter, broken)

	_, err := svc.Recommend(context.Background(), "happy", "user-1", nil)
	require.NoError(t, err)

	require.Len(t, usage.stats, 1)
	assert.Equal(t, "user-1", usage.stats[0].UserID)
	assert.Equal(t, "happy", usage.stats[0].Mood)
	assert.Equal(t, 1, usage.stats[0].ResultCount)
	require.Len(t, usage.stats[0].ProviderErrors, 1)
	assert.Contains(t, usage.stats[0].ProviderErrors[0], "geoapify")
}

func TestSearchAggregates(t *testing.T) {
	svc, _, usage := newTestService(
		&stubAdapter{name: "foursquare", places: []response_models.Place{place("a", "Alpha", 1, 1)}},
		&stubAdapter{name: "opencage", places: []response_models.Place{place("b", "Bravo", 2, 2)}},
	)

	result, err := svc.Search(context.Background(), "coffee", nil)
	require.NoError(t, err)
	assert.Len(t, result, 2)

	require.Len(t, usage.stats, 1)
	assert.Equal(t, "coffee", usage.stats[0].Query)
}

func TestGetPlaceByIDPrefersExactMatch(t *testing.T) {
	svc, _, _ := newTestService(&stubAdapter{name: "foursquare", places: []response_models.Place{
		place("other", "Other", 1, 1),
		place("wanted", "Wanted", 2, 2),
	}})

	found, err := svc.GetPlaceByID(context.Background(), "wanted")
	require.NoError(t, err)
	assert.Equal(t, "wanted", found.ID)
}

func TestGetPlaceByIDNotFound(t *testing.T) {
	svc, _, _ := newTestService(&stubAdapter{name: "foursquare"})

	_, err := svc.GetPlaceByID(context.Background(), "ghost")
	assert.Error(t, err)
}

// The hungry-in-Barranquilla walkthrough: a single Foursquare hit, nothing
// from the other providers, flows through mapping, dedup, scoring and the
// feedback overlay in one pass.
func TestRecommendEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"results": [{
				"fsq_id": "abc",
				"name": "El Pibe",
				"categories": [{"id": 13065, "name": "Restaurant"}],
				"rating": 8.4,
				"geocodes": {"main": {"latitude": 10.961, "longitude": -74.791}}
			}]
		}`))
	}))
	defer server.Close()

	foursquare := &providers.FoursquareAdapter{APIKey: "test-key", BaseURL: server.URL, HTTP: server.Client()}
	geoapify := &stubAdapter{name: "geoapify"}
	opencage := &stubAdapter{name: "opencage"}

	kv := newMemKV()
	svc := NewPlacesService(
		[]providers.Adapter{foursquare, geoapify, opencage},
		NewRandomScorer(),
		NewFeedbackService(kv),
		&memUsageRepo{},
	)

	result, err := svc.Recommend(context.Background(), "hungry", "user-1",
		&providers.Location{Latitude: 10.96, Longitude: -74.79})
	require.NoError(t, err)
	require.Len(t, result, 1)

	got := result[0]
	assert.Equal(t, "abc", got.ID)
	assert.Equal(t, "El Pibe", got.Name)
	require.NotNil(t, got.Rating)
	assert.InDelta(t, 4.2, *got.Rating, 1e-9)
	assert.Contains(t, got.MatchingMoods, "hungry")
	assert.GreaterOrEqual(t, got.MatchPercentage, 80)
	assert.LessOrEqual(t, got.MatchPercentage, 100)
	assert.Nil(t, got.UserFeedback)
}
