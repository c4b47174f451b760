package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"moodtrip/internal/providers"
	"moodtrip/internal/services"
	"moodtrip/pkg/utils"
)

type PlacesController struct {
	placesService services.PlacesServiceInterface
}

func NewPlacesController(placesService services.PlacesServiceInterface) *PlacesController {
	return &PlacesController{
		placesService: placesService,
	}
}

func (p *PlacesController) GetRecommendations(c *gin.Context) {
	mood := c.Query("mood")
	if mood == "" {
		utils.RespondError(c, http.StatusBadRequest, "Mood is required")
		return
	}

	userID := c.Query("userId")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	loc, ok := parseLocation(c)
	if !ok {
		return
	}

	places, err := p.placesService.Recommend(c.Request.Context(), mood, userID, loc)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Recommendations fetched successfully")
}

func (p *PlacesController) SearchPlaces(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Search query is required")
		return
	}

	loc, ok := parseLocation(c)
	if !ok {
		return
	}

	places, err := p.placesService.Search(c.Request.Context(), query, loc)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}

func (p *PlacesController) GetPopularPlaces(c *gin.Context) {
	loc, ok := parseLocation(c)
	if !ok {
		return
	}

	places, err := p.placesService.Popular(c.Request.Context(), loc)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Popular places fetched successfully")
}

func (p *PlacesController) GetPlaceByID(c *gin.Context) {
	placeID := c.Param("id")
	if placeID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Place ID is required")
		return
	}

	place, err := p.placesService.GetPlaceByID(c.Request.Context(), placeID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, place, "Place fetched successfully")
}

// parseLocation reads the optional lat/lon pair. It responds with a 400 and
// returns ok=false when only one of them is present or either is malformed.
func parseLocation(c *gin.Context) (*providers.Location, bool) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")

	if latStr == "" && lonStr == "" {
		return nil, true
	}
	if latStr == "" || lonStr == "" {
		utils.RespondError(c, http.StatusBadRequest, "Both lat and lon are required")
		return nil, false
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid latitude")
		return nil, false
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid longitude")
		return nil, false
	}

	return &providers.Location{Latitude: lat, Longitude: lon}, true
}
