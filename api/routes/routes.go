package routes

import (
	"net/http"

	"riftwatch/api/handlers"

	"github.com/gin-gonic/gin"
)

// Router wraps the engine and the versioned API group.
type Router struct {
	Engine *gin.Engine
	api    *gin.RouterGroup
}

// NewRouter creates a router with the versioned group and the health probe.
func NewRouter(engine *gin.Engine) *Router {
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return &Router{
		api:    engine.Group("/api/v1"),
		Engine: engine,
	}
}

// SetupRoutes registers every passed handler on its routes.
func (r *Router) SetupRoutes(handlerList ...any) {
	for _, h := range handlerList {
		switch handler := h.(type) {
		case *handlers.HistoryHandler:
			r.registerHistoryHandler(handler)
		case *handlers.PlayerStatsHandler:
			r.registerPlayerStatsHandler(handler)
		case *handlers.MatchDetailsHandler:
			r.registerMatchDetailsHandler(handler)
		case *handlers.ChampionHandler:
			r.registerChampionHandler(handler)
		}
	}
}

// Register the history handler.
func (r *Router) registerHistoryHandler(handler *handlers.HistoryHandler) {
	r.api.POST("/history", handler.GetMatchHistory)
}

// Register the player stats handler.
func (r *Router) registerPlayerStatsHandler(handler *handlers.PlayerStatsHandler) {
	r.api.POST("/player-stats", handler.GetPlayerStats)
}

// Register the match details handler.
func (r *Router) registerMatchDetailsHandler(handler *handlers.MatchDetailsHandler) {
	r.api.POST("/match-details", handler.GetMatchDetails)
}

// Register the champion handler.
func (r *Router) registerChampionHandler(handler *handlers.ChampionHandler) {
	r.api.GET("/champions", handler.GetAllChampions)
}

// Start the router.
func (r *Router) Run(addr string) error {
	return r.Engine.Run(addr)
}
