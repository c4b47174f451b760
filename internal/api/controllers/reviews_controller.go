package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"moodtrip/internal/models/request_models"
	"moodtrip/internal/services"
	"moodtrip/pkg/utils"
)

type ReviewsController struct {
	reviewService services.ReviewServiceInterface
}

func NewReviewsController(reviewService services.ReviewServiceInterface) *ReviewsController {
	return &ReviewsController{reviewService: reviewService}
}

// AddReview godoc
// @Summary Add a place review
// @Description Store a locally authored review for a place
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body request_models.AddReviewRequest true "Review payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /reviews [post]
func (r *ReviewsController) AddReview(c *gin.Context) {
	var req request_models.AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	review, err := r.reviewService.AddReview(c.Request.Context(), req.PlaceID, req.UserID, req.Text, req.Rating)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, review, "Review added successfully")
}

func (r *ReviewsController) GetPlaceReviews(c *gin.Context) {
	placeID := c.Param("placeId")
	if placeID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Place ID is required")
		return
	}

	reviews, err := r.reviewService.GetPlaceReviews(c.Request.Context(), placeID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reviews, "Reviews fetched successfully")
}
