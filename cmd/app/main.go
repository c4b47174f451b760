package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"moodtrip/cmd/fx/db_fx"
	"moodtrip/cmd/fx/feedback_fx"
	"moodtrip/cmd/fx/places_fx"
	"moodtrip/cmd/fx/providers_fx"
	"moodtrip/cmd/fx/reviews_fx"
	"moodtrip/cmd/fx/stats_fx"
	"moodtrip/internal/api/controllers"
	"moodtrip/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		providers_fx.Module,
		feedback_fx.Module,
		places_fx.Module,
		reviews_fx.Module,
		stats_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	placesController *controllers.PlacesController,
	feedbackController *controllers.FeedbackController,
	reviewsController *controllers.ReviewsController,
	statsController *controllers.StatsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, placesController, feedbackController, reviewsController, statsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	placesController *controllers.PlacesController,
	feedbackController *controllers.FeedbackController,
	reviewsController *controllers.ReviewsController,
	statsController *controllers.StatsController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	placesGroup := r.Group("/places")
	placesGroup.GET("/recommendations", placesController.GetRecommendations)
	placesGroup.GET("/search", placesController.SearchPlaces)
	placesGroup.GET("/popular", placesController.GetPopularPlaces)
	placesGroup.GET("/:id", placesController.GetPlaceByID)

	feedbackGroup := r.Group("/feedback")
	feedbackGroup.POST("", feedbackController.SubmitFeedback)
	feedbackGroup.GET("/:userId", feedbackController.GetUserFeedback)

	reviewsGroup := r.Group("/reviews")
	reviewsGroup.POST("", reviewsController.AddReview)
	reviewsGroup.GET("/:placeId", reviewsController.GetPlaceReviews)

	statsGroup := r.Group("/stats")
	statsGroup.GET("/recent", statsController.ListRecent)
}
