// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sweet-shop/internal/app"
	"github.com/MKhiriev/go-sweet-shop/internal/config"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("sweet-shop-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if buildVersion != "N/A" && cfg.App.Version == config.DefaultVersion {
		cfg.App.Version = buildVersion
	}

	log.Debug().
		Int("port", cfg.Runtime.Port).
		Str("node_env", cfg.Runtime.NodeEnv).
		Bool("listen", cfg.Runtime.ListenEnabled()).
		Int64("body_limit", cfg.Server.BodyLimit).
		Msg("received configs")

	application, err := app.New(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating application")
	}
	defer application.Close()

	err = application.Run()
	switch {
	case errors.Is(err, app.ErrListenDisabled):
		log.Info().Msg("listening is disabled; server built for in-process use")
	case err != nil:
		log.Error().Err(err).Msg("server stopped with error")
	}
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
