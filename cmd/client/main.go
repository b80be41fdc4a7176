// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-sweet-shop/internal/adapter"
	"github.com/MKhiriev/go-sweet-shop/internal/client"
	"github.com/MKhiriev/go-sweet-shop/internal/config"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
)

// Set at link time, e.g.
//
//	go build -ldflags "-X main.buildPublicAPIURL=https://api.example.com -X main.buildMode=production"
var (
	buildPublicAPIURL string
	buildAPIURL       string
	buildMode         string
)

const productionMode = "production"

func main() {
	log := logger.NewCLILogger("sweet-shop-client", os.Getenv("SWEETSHOP_VERBOSE") != "")

	cfg, err := config.GetClientConfig(config.ClientAPI{
		PublicAPIURL: buildPublicAPIURL,
		APIURL:       buildAPIURL,
		Production:   buildMode == productionMode,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	resolver := client.NewResolver(cfg.API)
	log.Debug().Str("base_url", resolver.BaseURL()).Str("origin", cfg.Adapter.Origin).Msg("api url resolved")

	shop := adapter.NewHTTPShopAdapter(resolver.ClientConfig(), cfg.Adapter.Origin, log)
	cli := client.NewApp(shop, resolver, os.Stdout, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = cli.Run(ctx, os.Args[1:]); err != nil {
		log.Error().Err(err).Send()
		stop()
		os.Exit(1)
	}
}
