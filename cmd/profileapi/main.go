// @title Profile API
// @version 1.0
// @description RESTful API que retorna informações de perfil com fatos de gatos dinâmicos
// @host localhost:8000
// @BasePath /
// @schemes http https

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/felipe/profileapi/internal/api"
	"github.com/felipe/profileapi/internal/config"
	"github.com/felipe/profileapi/internal/logger"
	"github.com/felipe/profileapi/internal/service/facts"
)

func main() {

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Pretty)

	if err := cfg.Validate(); err != nil {
		logger.Get().Error().Err(err).Msg("Invalid configuration")
		os.Exit(1)
	}

	factClient := facts.NewClient(cfg.CatFact)

	server := api.NewServer(cfg, factClient)

	go func() {
		if err := server.Start(); err != nil {
			logger.Get().Error().Err(err).Msg("Server error")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Get().Info().Msg("Shutting down server...")

	if err := server.Stop(); err != nil {
		logger.Get().Error().Err(err).Msg("Error stopping server")
	}

	logger.Get().Info().Msg("Server exited")
}
