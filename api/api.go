package main

import (
	"os"

	"riftwatch/api/modules"
	"riftwatch/api/routes"
	"riftwatch/pkg/config"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		if err := godotenv.Load(); err != nil {
			log.Warn("no .env file found, using the environment as is")
		}
	}

	config.LoadEnv()

	log.SetFormatter(&log.JSONFormatter{})

	if config.Riot.ApiKey == "" {
		log.Fatal("RIOT_API_KEY must be set")
	}

	// Create a module with all necessary handlers.
	module := modules.NewModule()

	// Create a new router with the routes setup.
	router := routes.NewRouter(module.Router)
	router.SetupRoutes(
		module.HistoryHandler,
		module.PlayerStatsHandler,
		module.MatchDetailsHandler,
		module.ChampionHandler,
	)

	// Start the server.
	if err := router.Run(":8080"); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
