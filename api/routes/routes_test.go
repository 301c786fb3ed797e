package routes

import (
	"testing"

	"riftwatch/api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter() *Router {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	return NewRouter(engine)
}

func TestNewRouter(t *testing.T) {
	router := setupTestRouter()

	assert.NotNil(t, router)
	assert.NotNil(t, router.Engine)
	assert.NotNil(t, router.api)
}

func TestSetupRoutes(t *testing.T) {
	router := setupTestRouter()

	router.SetupRoutes(
		&handlers.HistoryHandler{},
		&handlers.PlayerStatsHandler{},
		&handlers.MatchDetailsHandler{},
		&handlers.ChampionHandler{},
	)

	registered := make(map[string]bool)
	for _, route := range router.Engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	assert.True(t, registered["POST /api/v1/history"])
	assert.True(t, registered["POST /api/v1/player-stats"])
	assert.True(t, registered["POST /api/v1/match-details"])
	assert.True(t, registered["GET /api/v1/champions"])
	assert.True(t, registered["GET /healthz"])
}
