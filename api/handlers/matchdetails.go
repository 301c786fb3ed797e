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

// MatchDetailProvider is the service surface the details handler consumes.
type MatchDetailProvider interface {
	GetMatchDetails(ctx context.Context, body *filters.MatchDetailsBody) (*dto.MatchDetails, error)
}

// MatchDetailsHandler is the handler for the match details endpoint.
type MatchDetailsHandler struct {
	MatchDetailService MatchDetailProvider
}

// MatchDetailsHandlerDependencies is the dependency list for the details handler.
type MatchDetailsHandlerDependencies struct {
	MatchDetailService MatchDetailProvider
}

// NewMatchDetailsHandler creates a new instance of the match details handler.
func NewMatchDetailsHandler(deps *MatchDetailsHandlerDependencies) *MatchDetailsHandler {
	return &MatchDetailsHandler{
		MatchDetailService: deps.MatchDetailService,
	}
}

// GetMatchDetails returns the per player view of a single match.
func (h *MatchDetailsHandler) GetMatchDetails(c *gin.Context) {
	var body filters.MatchDetailsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": messages.MissingMatchFields})
		return
	}

	details, err := h.MatchDetailService.GetMatchDetails(c.Request.Context(), &body)
	if err != nil {
		c.JSON(apierror.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": details})
}
