package reviews_fx

import (
	"go.uber.org/fx"
	"moodtrip/internal/api/controllers"
	"moodtrip/internal/repositories"
	"moodtrip/internal/services"
)

var Module = fx.Provide(
	provideReviewService, provideReviewsController,
)

func provideReviewService(kv repositories.KVRepositoryInterface) services.ReviewServiceInterface {
	return services.NewReviewService(kv)
}

func provideReviewsController(reviewService services.ReviewServiceInterface) *controllers.ReviewsController {
	return controllers.NewReviewsController(reviewService)
}
