package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"moodtrip/internal/models/response_models"
	"moodtrip/internal/repositories"
	"moodtrip/pkg/utils"
)

const reviewsKey = "user_reviews"

type ReviewServiceInterface interface {
	AddReview(ctx context.Context, placeID, userID, text string, rating int) (response_models.Review, error)
	GetPlaceReviews(ctx context.Context, placeID string) ([]response_models.Review, error)
}

// ReviewService stores locally authored reviews as one JSON array under a
// single key, the providers have no review surface of their own.
type ReviewService struct {
	kv repositories.KVRepositoryInterface
}

func NewReviewService(kv repositories.KVRepositoryInterface) ReviewServiceInterface {
	return &ReviewService{kv: kv}
}

func (s *ReviewService) AddReview(ctx context.Context, placeID, userID, text string, rating int) (response_models.Review, error) {
	if rating < 1 || rating > 5 {
		return response_models.Review{}, utils.ErrInvalidRating
	}

	review := response_models.Review{
		ID:          "review_" + uuid.New().String(),
		PlaceID:     placeID,
		UserID:      userID,
		Text:        text,
		Rating:      rating,
		Date:        time.Now().UTC().Format(time.RFC3339),
		IsAnonymous: true,
	}

	reviews, err := s.loadReviews(ctx)
	if err != nil {
		return response_models.Review{}, utils.ErrStoreFailure
	}
	reviews = append(reviews, review)

	encoded, err := json.Marshal(reviews)
	if err != nil {
		return response_models.Review{}, utils.ErrStoreFailure
	}
	if err := s.kv.Set(ctx, reviewsKey, string(encoded)); err != nil {
		log.Printf("Error storing review for place %s: %v", placeID, err)
		return response_models.Review{}, utils.ErrStoreFailure
	}
	return review, nil
}

func (s *ReviewService) GetPlaceReviews(ctx context.Context, placeID string) ([]response_models.Review, error) {
	reviews, err := s.loadReviews(ctx)
	if err != nil {
		log.Printf("Error reading reviews: %v", err)
		return []response_models.Review{}, nil
	}

	placeReviews := make([]response_models.Review, 0)
	for _, r := range reviews {
		if r.PlaceID == placeID {
			placeReviews = append(placeReviews, r)
		}
	}
	return placeReviews, nil
}

func (s *ReviewService) loadReviews(ctx context.Context) ([]response_models.Review, error) {
	raw, err := s.kv.Get(ctx, reviewsKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return []response_models.Review{}, nil
	}

	var reviews []response_models.Review
	if err := json.Unmarshal([]byte(raw), &reviews); err != nil {
		log.Printf("Corrupt reviews entry, starting over: %v", err)
		return []response_models.Review{}, nil
	}
	return reviews, nil
}
