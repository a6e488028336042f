package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"healieve/health-app/internal/service"
)

// AdvisoryHandler holds the advisory service dependency.
type AdvisoryHandler struct {
	advisoryService service.AdvisoryService
}

// NewAdvisoryHandler creates a new AdvisoryHandler.
func NewAdvisoryHandler(advisoryService service.AdvisoryService) *AdvisoryHandler {
	return &AdvisoryHandler{advisoryService: advisoryService}
}

// GetAdvisory returns current weather, the composite AQI reading and the
// environment-aware activity recommendations for a coordinate pair.
func (h *AdvisoryHandler) GetAdvisory(c *gin.Context) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'lat' must be a number.")
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'lon' must be a number.")
		return
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		abortWithError(c, http.StatusBadRequest, "Coordinates out of range.")
		return
	}

	advisory, err := h.advisoryService.Advise(c.Request.Context(), lat, lon)
	if err != nil {
		abortWithError(c, http.StatusBadGateway, "Weather data is temporarily unavailable")
		return
	}

	c.JSON(http.StatusOK, advisory)
}
