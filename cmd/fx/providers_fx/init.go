package providers_fx

import (
	"go.uber.org/fx"
	"moodtrip/internal/providers"
)

var Module = fx.Provide(
	provideAdapters)

// provideAdapters fixes the aggregation order: the first provider to report
// a place wins deduplication.
func provideAdapters() []providers.Adapter {
	return []providers.Adapter{
		providers.NewFoursquareAdapter(),
		providers.NewGeoapifyAdapter(),
		providers.NewOpenCageAdapter(),
	}
}
