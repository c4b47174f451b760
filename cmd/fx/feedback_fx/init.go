package feedback_fx

import (
	"go.uber.org/fx"
	"moodtrip/internal/api/controllers"
	"moodtrip/internal/repositories"
	"moodtrip/internal/services"
)

var Module = fx.Provide(
	provideFeedbackService, provideFeedbackController,
)

func provideFeedbackService(kv repositories.KVRepositoryInterface) services.FeedbackServiceInterface {
	return services.NewFeedbackService(kv)
}

func provideFeedbackController(feedbackService services.FeedbackServiceInterface) *controllers.FeedbackController {
	return controllers.NewFeedbackController(feedbackService)
}
