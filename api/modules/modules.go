package modules

import (
	"riftwatch/api/cache"
	"riftwatch/api/handlers"
	"riftwatch/fetcher/assets"
	"riftwatch/fetcher/data"
	"riftwatch/fetcher/requests"
	"riftwatch/pkg/config"
	"riftwatch/pkg/redis"

	"github.com/gin-gonic/gin"
)

// Module holds the engine and every initialized handler.
type Module struct {
	Router              *gin.Engine
	HistoryHandler      *handlers.HistoryHandler
	PlayerStatsHandler  *handlers.PlayerStatsHandler
	MatchDetailsHandler *handlers.MatchDetailsHandler
	ChampionHandler     *handlers.ChampionHandler
}

// ModuleDependencies holds the shared pieces every handler initializer needs.
type ModuleDependencies struct {
	Riot    data.RiotAPI
	Catalog *cache.ChampionCatalog
}

// NewModule wires the whole dependency graph from the loaded configuration.
func NewModule() *Module {
	router := gin.Default()

	retryPolicy := requests.DefaultRetryPolicy()
	client := requests.NewClient(config.Riot.ApiKey, retryPolicy)

	riot := data.CreateMainFetcher(client, config.Riot.MainRegion, config.Riot.SubRegion)

	// Redis is optional, the catalog works without the backing.
	catalog := cache.NewChampionCatalog(&cache.ChampionCatalogDependencies{
		Source: assets.CreateFetcher(client),
		Redis:  redis.NewClient(),
	})

	deps := &ModuleDependencies{
		Riot:    riot,
		Catalog: catalog,
	}

	return &Module{
		Router:              router,
		HistoryHandler:      initializeHistoryHandler(deps),
		PlayerStatsHandler:  initializePlayerStatsHandler(deps),
		MatchDetailsHandler: initializeMatchDetailsHandler(deps),
		ChampionHandler:     initializeChampionHandler(deps),
	}
}
