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

// HistoryProvider is the service surface the history handler consumes.
type HistoryProvider interface {
	GetMatchHistory(ctx context.Context, body *filters.PlayerHandleBody) (*dto.MatchHistory, error)
}

// HistoryHandler is the handler for the match history endpoint.
type HistoryHandler struct {
	HistoryService HistoryProvider
}

// HistoryHandlerDependencies is the dependency list for the history handler.
type HistoryHandlerDependencies struct {
	HistoryService HistoryProvider
}

// NewHistoryHandler creates a new instance of the history handler.
func NewHistoryHandler(deps *HistoryHandlerDependencies) *HistoryHandler {
	return &HistoryHandler{
		HistoryService: deps.HistoryService,
	}
}

// GetMatchHistory returns the recent match summaries for a riot id.
func (h *HistoryHandler) GetMatchHistory(c *gin.Context) {
	var body filters.PlayerHandleBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": messages.MissingHandleFields})
		return
	}

	history, err := h.HistoryService.GetMatchHistory(c.Request.Context(), &body)
	if err != nil {
		c.JSON(apierror.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": history})
}
