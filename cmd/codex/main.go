package main

import (
	"context"
	"fmt"

	"github.com/seong-ho-y/bitrogue-project/internal/adapter"
	"github.com/seong-ho-y/bitrogue-project/internal/config"
	handlerhttp "github.com/seong-ho-y/bitrogue-project/internal/handler/http"
	"github.com/seong-ho-y/bitrogue-project/internal/logger"
	"github.com/seong-ho-y/bitrogue-project/internal/server"
	"github.com/seong-ho-y/bitrogue-project/internal/service"
	"github.com/seong-ho-y/bitrogue-project/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("codex")
	cfg, err := config.GetCodexConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting database")
	}
	defer db.Close()

	storages, err := store.NewCodexStorages(db, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	notifier := adapter.NewScoreServerClient(adapter.ScoreServerClientConfig{
		BaseURL: cfg.Codex.ScoreServerURL,
		Timeout: cfg.Codex.NotifyTimeout,
	}, log)

	services := service.NewCodexServices(storages, notifier, log)

	if cfg.Codex.Seed {
		if err := services.CodexService.Seed(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("error seeding codex")
		}
	}

	handler := handlerhttp.NewHandler(services, log)

	srv, err := server.NewServer(handler.InitCodexRoutes(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
