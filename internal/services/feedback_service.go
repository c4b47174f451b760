package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"moodtrip/internal/repositories"
	"moodtrip/pkg/utils"
)

const (
	FeedbackLiked    = "liked"
	FeedbackDisliked = "disliked"
)

type FeedbackServiceInterface interface {
	SaveFeedback(ctx context.Context, userID, placeID string, liked bool) error
	GetFeedback(ctx context.Context, userID string) (map[string]string, error)
}

// FeedbackService keeps one liked/disliked map per user, stored as JSON under
// a single key. Reads degrade to an empty map on store trouble; writes
// propagate failures so a lost user action is visible to the caller.
type FeedbackService struct {
	kv repositories.KVRepositoryInterface
}

func NewFeedbackService(kv repositories.KVRepositoryInterface) FeedbackServiceInterface {
	return &FeedbackService{kv: kv}
}

func feedbackKey(userID string) string {
	return fmt.Sprintf("feedback_%s", userID)
}

func (s *FeedbackService) GetFeedback(ctx context.Context, userID string) (map[string]string, error) {
	raw, err := s.kv.Get(ctx, feedbackKey(userID))
	if err != nil {
		log.Printf("Error reading feedback for user %s: %v", userID, err)
		return map[string]string{}, nil
	}
	if raw == "" {
		return map[string]string{}, nil
	}

	feedback := make(map[string]string)
	if err := json.Unmarshal([]byte(raw), &feedback); err != nil {
		log.Printf("Corrupt feedback entry for user %s: %v", userID, err)
		return map[string]string{}, nil
	}
	return feedback, nil
}

func (s *FeedbackService) SaveFeedback(ctx context.Context, userID, placeID string, liked bool) error {
	key := feedbackKey(userID)

	// Read-modify-write on the whole map so entries for other places
	// survive the update.
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		log.Printf("Error reading feedback before write for user %s: %v", userID, err)
		return utils.ErrStoreFailure
	}

	feedback := make(map[string]string)
	if raw != "" {
		if err := json.Unmarshal([]byte(raw), &feedback); err != nil {
			log.Printf("Corrupt feedback entry for user %s, resetting: %v", userID, err)
			feedback = make(map[string]string)
		}
	}

	if liked {
		feedback[placeID] = FeedbackLiked
	} else {
		feedback[placeID] = FeedbackDisliked
	}

	encoded, err := json.Marshal(feedback)
	if err != nil {
		return utils.ErrStoreFailure
	}
	if err := s.kv.Set(ctx, key, string(encoded)); err != nil {
		log.Printf("Error storing feedback for user %s: %v", userID, err)
		return utils.ErrStoreFailure
	}
	return nil
}
