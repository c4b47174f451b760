package places_fx

import (
	"go.uber.org/fx"
	"moodtrip/internal/api/controllers"
	"moodtrip/internal/providers"
	"moodtrip/internal/repositories"
	"moodtrip/internal/services"
)

var Module = fx.Provide(
	provideScorer, providePlacesService, providePlacesController)

func provideScorer() services.Scorer {
	return services.NewRandomScorer()
}

func providePlacesService(
	adapters []providers.Adapter,
	scorer services.Scorer,
	feedbackService services.FeedbackServiceInterface,
	usageRepo repositories.UsageStatRepositoryInterface,
) services.PlacesServiceInterface {
	return services.NewPlacesService(adapters, scorer, feedbackService, usageRepo)
}

func providePlacesController(placesService services.PlacesServiceInterface) *controllers.PlacesController {
	return controllers.NewPlacesController(placesService)
}
