package stats_fx

import (
	"go.uber.org/fx"
	"moodtrip/internal/api/controllers"
	"moodtrip/internal/repositories"
	"moodtrip/internal/services"
)

var Module = fx.Provide(
	provideStatsService, provideStatsController,
)

func provideStatsService(usageRepo repositories.UsageStatRepositoryInterface) services.StatsServiceInterface {
	return services.NewStatsService(usageRepo)
}

func provideStatsController(statsService services.StatsServiceInterface) *controllers.StatsController {
	return controllers.NewStatsController(statsService)
}
