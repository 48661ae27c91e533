package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Polsaker/dongerdong/internal/service"
	"github.com/gin-gonic/gin"
)

type LeaderboardHandler struct {
	statsService *service.StatsService
}

func NewLeaderboardHandler(statsService *service.StatsService) *LeaderboardHandler {
	return &LeaderboardHandler{
		statsService: statsService,
	}
}

// GetLeaderboard godoc
// @Summary Get leaderboard
// @Description Best players by ELO, or the worst with order=shame. Only players with 15 ranked games qualify.
// @Tags leaderboard
// @Produce json
// @Param order query string false "top or shame" default(top)
// @Param limit query int false "Number of players to return" default(5)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /leaderboard [get]
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	order := c.DefaultQuery("order", "top")
	if order != "top" && order != "shame" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "order must be top or shame",
		})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultLeaderboardLimit)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "limit must be a number",
		})
		return
	}

	records, err := h.statsService.Leaderboard(limit, order == "shame")
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get leaderboard",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leaderboard": records,
		"order":       order,
		"total":       len(records),
	})
}

// GetPlayer returns one player's record and rank
func (h *LeaderboardHandler) GetPlayer(c *gin.Context) {
	summary, err := h.statsService.Summary(c.Param("name"))
	if err != nil {
		if errors.Is(err, service.ErrPlayerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Player not found",
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get player stats",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"player": summary,
	})
}
