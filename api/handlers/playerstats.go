package handlers

import (
	"context"
	"net/http"

	"riftwatch/api/dto"
	"riftwatch/api/filters"
	"riftwatch/pkg/apierror"
	"riftwatch/pkg/messages"

	"github.com/gin-gonic/gin"
)

// PlayerStatsProvider is the service surface the stats handler consumes.
type PlayerStatsProvider interface {
	GetPlayerStats(ctx context.Context, body *filters.PlayerHandleBody) (*dto.PlayerStats, error)
}

// PlayerStatsHandler is the handler for the player stats endpoint.
type PlayerStatsHandler struct {
	PlayerStatsService PlayerStatsProvider
}

// PlayerStatsHandlerDependencies is the dependency list for the stats handler.
type PlayerStatsHandlerDependencies struct {
	PlayerStatsService PlayerStatsProvider
}

// NewPlayerStatsHandler creates a new instance of the player stats handler.
func NewPlayerStatsHandler(deps *PlayerStatsHandlerDependencies) *PlayerStatsHandler {
	return &PlayerStatsHandler{
		PlayerStatsService: deps.PlayerStatsService,
	}
}

// GetPlayerStats returns mastery, ranked standing and champion winrates.
func (h *PlayerStatsHandler) GetPlayerStats(c *gin.Context) {
	var body filters.PlayerHandleBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": messages.MissingHandleFields})
		return
	}

	stats, err := h.PlayerStatsService.GetPlayerStats(c.Request.Context(), &body)
	if err != nil {
		c.JSON(apierror.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": stats})
}
