// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StudyHub Authors

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/studyhub-id/studyhub/internal/config"
	"github.com/studyhub-id/studyhub/internal/handler"
	"github.com/studyhub-id/studyhub/internal/logger"
	"github.com/studyhub-id/studyhub/internal/server"
	"github.com/studyhub-id/studyhub/internal/service"
	"github.com/studyhub-id/studyhub/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("studyhub-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := connectDatabase(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	repositories := store.NewRepositories(db, log)
	broker := store.NewBroker(log)
	services := service.NewServices(repositories, broker, cfg, log)
	handlers := handler.NewHandlers(services, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// connectDatabase picks the SQL driver from the DSN shape: URL-style DSNs go
// to PostgreSQL, anything else is treated as an SQLite file path.
func connectDatabase(ctx context.Context, cfg config.DB, log *logger.Logger) (*store.DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return store.NewConnectPostgres(ctx, cfg, log)
	}
	return store.NewConnectSQLite(ctx, cfg, log)
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
