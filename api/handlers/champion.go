package handlers

import (
	"net/http"

	"riftwatch/api/cache"
	"riftwatch/pkg/apierror"

	"github.com/gin-gonic/gin"
)

// ChampionHandler serves the static champion catalog.
type ChampionHandler struct {
	Catalog *cache.ChampionCatalog
}

// ChampionHandlerDependencies is the dependency list for the champion handler.
type ChampionHandlerDependencies struct {
	Catalog *cache.ChampionCatalog
}

// NewChampionHandler creates a new instance of the champion handler.
func NewChampionHandler(deps *ChampionHandlerDependencies) *ChampionHandler {
	return &ChampionHandler{
		Catalog: deps.Catalog,
	}
}

// GetAllChampions returns the full catalog keyed by numeric champion key.
func (h *ChampionHandler) GetAllChampions(c *gin.Context) {
	catalog, err := h.Catalog.All(c.Request.Context())
	if err != nil {
		c.JSON(apierror.StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": catalog})
}
