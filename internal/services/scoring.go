package services

import (
	"math/rand"

	"moodtrip/internal/models/response_models"
)

// Scorer assigns the match percentage attached to recommendations. The
// default is a uniformly random value in [80,100] carried over from the
// mobile app; it is deliberately not a real relevance signal, the interface
// exists so one can be dropped in.
type Scorer interface {
	Score(place response_models.Place) int
}

type RandomScorer struct{}

func NewRandomScorer() *RandomScorer {
	return &RandomScorer{}
}

func (s *RandomScorer) Score(response_models.Place) int {
	return rand.Intn(21) + 80
}
