// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 StudyHub Authors

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/studyhub-id/studyhub/internal/cli"
	"github.com/studyhub-id/studyhub/internal/config"
	"github.com/studyhub-id/studyhub/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// a missing .env file is fine; environment variables still apply
	_ = godotenv.Load()

	log := logger.NewClientLogger("studyhub")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	app := cli.NewApp(cfg, log)
	app.SetBuildInfo(buildVersion, buildDate, buildCommit)

	if err := app.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "studyhub: %v\n", err)
		os.Exit(1)
	}
}
