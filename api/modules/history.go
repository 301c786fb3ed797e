package modules

import (
	"riftwatch/api/handlers"
	historyservice "riftwatch/api/services/history"
)

func initializeHistoryHandler(deps *ModuleDependencies) *handlers.HistoryHandler {
	historyService := historyservice.NewHistoryService(&historyservice.HistoryServiceDeps{
		Riot:    deps.Riot,
		Catalog: deps.Catalog,
	})

	return handlers.NewHistoryHandler(&handlers.HistoryHandlerDependencies{
		HistoryService: historyService,
	})
}
