package modules

import (
	"riftwatch/api/handlers"
)

func initializeChampionHandler(deps *ModuleDependencies) *handlers.ChampionHandler {
	return handlers.NewChampionHandler(&handlers.ChampionHandlerDependencies{
		Catalog: deps.Catalog,
	})
}
