package providers

import (
	"context"
	"net/http"
	"time"

	"moodtrip/internal/models/response_models"
)

// Location is an optional search bias point.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Query is the provider-agnostic search input. Adapters read whichever parts
// their API understands and ignore the rest.
type Query struct {
	Text       string
	Categories []string
	Location   *Location
	Limit      int
}

// Adapter is one external place-search API. Implementations are stateless and
// safe for concurrent use; a failed call returns an error and contributes no
// results, it never panics and is never retried.
type Adapter interface {
	Name() string
	Search(ctx context.Context, q Query) ([]response_models.Place, error)
}

// PlaceholderImageURL substitutes for providers that return no imagery.
const PlaceholderImageURL = "https://via.placeholder.com/600/92c952"

const defaultTimeout = 8 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: defaultTimeout}
}
