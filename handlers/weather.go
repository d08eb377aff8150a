package handlers

import (
	"net/http"
	"strconv"

	"detailify/services/weather"

	"github.com/gin-gonic/gin"
)

// WeatherHandler exposes the shop's local outlook.
type WeatherHandler struct {
	Service weather.WeatherService
}

func NewWeatherHandler(svc weather.WeatherService) *WeatherHandler {
	return &WeatherHandler{Service: svc}
}

// TodayHandler returns current conditions plus today's range.
func (h *WeatherHandler) TodayHandler(c *gin.Context) {
	snap, err := h.Service.Today(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "weather service unavailable", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// ForecastHandler returns the outlook ?day= days ahead (0 = today).
func (h *WeatherHandler) ForecastHandler(c *gin.Context) {
	day := 0
	if raw := c.Query("day"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "day must be an integer"})
			return
		}
		day = parsed
	}

	snap, err := h.Service.Forecast(c.Request.Context(), day)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}
