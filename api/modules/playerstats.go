package modules

import (
	"riftwatch/api/handlers"
	playerstatsservice "riftwatch/api/services/playerstats"
)

func initializePlayerStatsHandler(deps *ModuleDependencies) *handlers.PlayerStatsHandler {
	playerStatsService := playerstatsservice.NewPlayerStatsService(&playerstatsservice.PlayerStatsServiceDeps{
		Riot:    deps.Riot,
		Catalog: deps.Catalog,
	})

	return handlers.NewPlayerStatsHandler(&handlers.PlayerStatsHandlerDependencies{
		PlayerStatsService: playerStatsService,
	})
}
