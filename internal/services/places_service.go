package services

import (
	"context"
	"log"
	"strings"
	"sync"

	"moodtrip/internal/models/db_models"
	"moodtrip/internal/models/response_models"
	"moodtrip/internal/moods"
	"moodtrip/internal/providers"
	"moodtrip/internal/repositories"
	"moodtrip/pkg/utils"
)

type PlacesServiceInterface interface {
	Recommend(ctx context.Context, mood, userID string, loc *providers.Location) ([]response_models.Place, error)
	Search(ctx context.Context, query string, loc *providers.Location) ([]response_models.Place, error)
	Popular(ctx context.Context, loc *providers.Location) ([]response_models.Place, error)
	GetPlaceByID(ctx context.Context, id string) (response_models.Place, error)
}

// PlacesService fans a request out to every configured provider adapter,
// merges and deduplicates whatever came back, and decorates the survivors
// with a match score and previously stored user feedback. Adapter failures
// are tolerated: a dead provider contributes zero results, and when all of
// them are dead the caller gets an empty list, not an error.
type PlacesService struct {
	// Adapter order fixes the dedup tie-break: the first provider to
	// report a place wins.
	adapters        []providers.Adapter
	scorer          Scorer
	feedbackService FeedbackServiceInterface
	usageRepo       repositories.UsageStatRepositoryInterface
}

func NewPlacesService(
	adapters []providers.Adapter,
	scorer Scorer,
	feedbackService FeedbackServiceInterface,
	usageRepo repositories.UsageStatRepositoryInterface,
) PlacesServiceInterface {
	return &PlacesService{
		adapters:        adapters,
		scorer:          scorer,
		feedbackService: feedbackService,
		usageRepo:       usageRepo,
	}
}

func (s *PlacesService) Recommend(ctx context.Context, mood, userID string, loc *providers.Location) ([]response_models.Place, error) {
	mood = strings.ToLower(strings.TrimSpace(mood))

	places, providerErrors := s.aggregate(ctx, func(adapter providers.Adapter) providers.Query {
		pq := moods.QueryForProvider(adapter.Name(), mood)
		return providers.Query{
			Text:       pq.Text,
			Categories: pq.Categories,
			Location:   loc,
		}
	})

	feedback, err := s.feedbackService.GetFeedback(ctx, userID)
	if err != nil {
		// Reads of the feedback store never break a recommendation.
		log.Printf("Error loading feedback for user %s: %v", userID, err)
		feedback = map[string]string{}
	}

	for i := range places {
		places[i].MatchPercentage = s.scorer.Score(places[i])
		if fb, ok := feedback[places[i].ID]; ok {
			v := fb
			places[i].UserFeedback = &v
		}
	}

	s.recordUsage(ctx, userID, mood, "", providerErrors, len(places))
	return places, nil
}

func (s *PlacesService) Search(ctx context.Context, query string, loc *providers.Location) ([]response_models.Place, error) {
	places, providerErrors := s.aggregate(ctx, func(providers.Adapter) providers.Query {
		return providers.Query{Text: query, Location: loc}
	})

	s.recordUsage(ctx, "", "", query, providerErrors, len(places))
	return places, nil
}

func (s *PlacesService) Popular(ctx context.Context, loc *providers.Location) ([]response_models.Place, error) {
	places, _ := s.aggregate(ctx, func(providers.Adapter) providers.Query {
		return providers.Query{Text: "points of interest", Location: loc, Limit: 10}
	})
	return places, nil
}

// GetPlaceByID is best-effort: providers have no shared lookup endpoint, so
// the aggregation is re-run with the id as the query and an exact id match is
// preferred over the first hit.
func (s *PlacesService) GetPlaceByID(ctx context.Context, id string) (response_models.Place, error) {
	places, _ := s.aggregate(ctx, func(providers.Adapter) providers.Query {
		return providers.Query{Text: id, Limit: 5}
	})
	if len(places) == 0 {
		return response_models.Place{}, utils.ErrPlaceNotFound
	}

	for _, p := range places {
		if p.ID == id {
			return p, nil
		}
	}
	return places[0], nil
}

// aggregate issues one concurrent search per adapter, then joins the settled
// results in the adapters' fixed order so deduplication stays deterministic.
func (s *PlacesService) aggregate(ctx context.Context, buildQuery func(providers.Adapter) providers.Query) ([]response_models.Place, []string) {
	results := make([][]response_models.Place, len(s.adapters))
	errs := make([]error, len(s.adapters))

	var wg sync.WaitGroup
	for i, adapter := range s.adapters {
		wg.Add(1)
		go func(i int, adapter providers.Adapter) {
			defer wg.Done()
			results[i], errs[i] = adapter.Search(ctx, buildQuery(adapter))
		}(i, adapter)
	}
	wg.Wait()

	var providerErrors []string
	merged := make([]response_models.Place, 0)
	for i, adapter := range s.adapters {
		if errs[i] != nil {
			log.Printf("Provider %s failed: %v", adapter.Name(), errs[i])
			providerErrors = append(providerErrors, adapter.Name()+": "+errs[i].Error())
			continue
		}
		merged = append(merged, results[i]...)
	}

	return DedupePlaces(merged), providerErrors
}

// recordUsage persists one coarse stat row per call; failures only get
// logged, stats must never break a search.
func (s *PlacesService) recordUsage(ctx context.Context, userID, mood, query string, providerErrors []string, resultCount int) {
	if s.usageRepo == nil {
		return
	}
	stat := &db_models.UsageStat{
		UserID:         userID,
		Mood:           mood,
		Query:          query,
		ProviderErrors: providerErrors,
		ResultCount:    resultCount,
	}
	if err := s.usageRepo.CreateUsageStat(ctx, stat); err != nil {
		log.Printf("Error recording usage stat: %v", err)
	}
}
