package main

import (
	"github.com/rs/zerolog/log"

	"github.com/Jugal-Chanda/demo-CICD-github/config"
	"github.com/Jugal-Chanda/demo-CICD-github/db"
	"github.com/Jugal-Chanda/demo-CICD-github/handlers"
	"github.com/Jugal-Chanda/demo-CICD-github/logger"
	"github.com/Jugal-Chanda/demo-CICD-github/repository"
	"github.com/Jugal-Chanda/demo-CICD-github/routes"
	"github.com/Jugal-Chanda/demo-CICD-github/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logger.Init(cfg.LogLevel)

	database, err := db.Connect(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close()

	userRepo := repository.NewUserRepository(database)
	serviceManager := services.NewServiceManager(userRepo)
	handlerManager := handlers.NewHandlerManager(serviceManager, userRepo, cfg.DB.PingTimeout)

	r := routes.SetupRoutes(handlerManager)

	log.Info().Str("port", cfg.Port).Str("version", handlers.Version).Msg("users service starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
