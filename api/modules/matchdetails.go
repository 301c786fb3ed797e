package modules

import (
	"riftwatch/api/handlers"
	matchdetailservice "riftwatch/api/services/matchdetail"
)

func initializeMatchDetailsHandler(deps *ModuleDependencies) *handlers.MatchDetailsHandler {
	matchDetailService := matchdetailservice.NewMatchDetailService(&matchdetailservice.MatchDetailServiceDeps{
		Riot: deps.Riot,
	})

	return handlers.NewMatchDetailsHandler(&handlers.MatchDetailsHandlerDependencies{
		MatchDetailService: matchDetailService,
	})
}
