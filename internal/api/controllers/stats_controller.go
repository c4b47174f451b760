package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"moodtrip/internal/services"
	"moodtrip/pkg/utils"
)

type StatsController struct {
	statsService services.StatsServiceInterface
}

func NewStatsController(statsService services.StatsServiceInterface) *StatsController {
	return &StatsController{statsService: statsService}
}

func (s *StatsController) ListRecent(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "10")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	stats, err := s.statsService.ListRecent(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stats, "Usage stats fetched successfully")
}
