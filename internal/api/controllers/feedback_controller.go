package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"moodtrip/internal/models/request_models"
	"moodtrip/internal/services"
	"moodtrip/pkg/utils"
)

type FeedbackController struct {
	feedbackService services.FeedbackServiceInterface
}

func NewFeedbackController(feedbackService services.FeedbackServiceInterface) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// SubmitFeedback godoc
// @Summary Submit place feedback
// @Description Store a liked/disliked mark for a place on behalf of a user
// @Tags Feedback
// @Accept json
// @Produce json
// @Param request body request_models.SubmitFeedbackRequest true "Feedback payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /feedback [post]
func (f *FeedbackController) SubmitFeedback(c *gin.Context) {
	var req request_models.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	err := f.feedbackService.SaveFeedback(c.Request.Context(), req.UserID, req.PlaceID, *req.Liked)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Feedback saved successfully")
}

// GetUserFeedback godoc
// @Summary Get a user's feedback map
// @Description Returns the placeId to liked/disliked map stored for a user
// @Tags Feedback
// @Param userId path string true "User ID"
// @Success 200 {object} utils.APIResponse
// @Router /feedback/{userId} [get]
func (f *FeedbackController) GetUserFeedback(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	feedback, err := f.feedbackService.GetFeedback(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, feedback, "Feedback fetched successfully")
}
