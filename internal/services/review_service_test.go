package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"moodtrip/pkg/utils"
)

func TestAddReviewAndFilterByPlace(t *testing.T) {
	kv := newMemKV()
	svc := NewReviewService(kv)
	ctx := context.Background()

	first, err := svc.AddReview(ctx, "p1", "user-1", "Great spot", 5)
	require.NoError(t, err)
	_, err = svc.AddReview(ctx, "p2", "user-1", "Too crowded", 2)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first.ID, "review_"))
	assert.True(t, first.IsAnonymous)
	_, err = time.Parse(time.RFC3339, first.Date)
	assert.NoError(t, err)

	reviews, err := svc.GetPlaceReviews(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Great spot", reviews[0].Text)

	none, err := svc.GetPlaceReviews(ctx, "p3")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAddReviewRejectsInvalidRating(t *testing.T) {
	svc := NewReviewService(newMemKV())

	_, err := svc.AddReview(context.Background(), "p1", "user-1", "meh", 0)
	assert.ErrorIs(t, err, utils.ErrInvalidRating)

	_, err = svc.AddReview(context.Background(), "p1", "user-1", "meh", 6)
	assert.ErrorIs(t, err, utils.ErrInvalidRating)
}

func TestAddReviewPropagatesStoreFailure(t *testing.T) {
	kv := newMemKV()
	kv.failSet = true
	svc := NewReviewService(kv)

	_, err := svc.AddReview(context.Background(), "p1", "user-1", "lost words", 4)
	assert.ErrorIs(t, err, utils.ErrStoreFailure)
}

func TestGetPlaceReviewsDegradesOnStoreFailure(t *testing.T) {
	kv := newMemKV()
	kv.failGet = true
	svc := NewReviewService(kv)

	reviews, err := svc.GetPlaceReviews(context.Background(), "p1")
	assert.NoError(t, err)
	assert.Empty(t, reviews)
}
