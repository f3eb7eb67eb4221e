package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"ezpt/services"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// parseYear reads the ?year= query. Out-of-range or garbage values are
// treated as absent, matching the lenient read-side filters elsewhere.
func parseYear(c *gin.Context) *int {
	raw := c.Query("year")
	if raw == "" {
		return nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 2000 || year > 2100 {
		return nil
	}
	return &year
}

func (h *StatsHandler) GetLeaderboard(c *gin.Context) {
	year := parseYear(c)
	includeGuests := c.Query("include_guests") == "true"

	stats, err := h.statsService.GetLeaderboard(c.Request.Context(), year, includeGuests)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *StatsHandler) GetPlayerStats(c *gin.Context) {
	playerID, err := strconv.ParseUint(c.Param("playerId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return
	}

	stats, err := h.statsService.GetPlayerStats(c.Request.Context(), uint(playerID), parseYear(c))
	if err != nil {
		if errors.Is(err, services.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
