// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app assembles the sweet shop server from its configuration:
// database, storages, services, HTTP handler and server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-sweet-shop/internal/config"
	"github.com/MKhiriev/go-sweet-shop/internal/handler"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/internal/server"
	"github.com/MKhiriev/go-sweet-shop/internal/service"
	"github.com/MKhiriev/go-sweet-shop/internal/store"
)

// startupPingTimeout bounds the database probe made while starting.
const startupPingTimeout = 5 * time.Second

// App is a fully configured server. Building it never binds a socket.
type App struct {
	cfg *config.StructuredConfig

	db     *store.DB
	server server.Server

	logger *logger.Logger
}

// New wires every layer. An unreachable database is logged and tolerated;
// only configuration and migration errors are fatal.
func New(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	db, err := openDatabase(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		closeDB(db, log)
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		closeDB(db, log)
		return nil, fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers.HTTP.Init(), cfg.ListenAddress(), cfg.Server, log)
	if err != nil {
		closeDB(db, log)
		return nil, fmt.Errorf("error creating server: %w", err)
	}

	return &App{
		cfg:    cfg,
		db:     db,
		server: srv,
		logger: log,
	}, nil
}

// openDatabase returns nil without error when no DSN is configured.
func openDatabase(ctx context.Context, cfg config.DB, log *logger.Logger) (*store.DB, error) {
	if cfg.DSN == "" {
		log.Warn().Msg("database DSN is not set; running without a database")
		return nil, nil
	}

	db, err := store.NewConnect(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, startupPingTimeout)
	defer cancel()

	if err = db.Ping(pingCtx); err != nil {
		log.Warn().Err(err).Str("driver", string(db.Driver())).Msg("database is not reachable; continuing")
		return db, nil
	}
	log.Info().Str("driver", string(db.Driver())).Msg("database connected")

	if cfg.SkipMigrations {
		log.Info().Msg("migrations are skipped")
		return db, nil
	}

	if err = db.Migrate(ctx); err != nil {
		closeDB(db, log)
		return nil, err
	}
	log.Info().Msg("migrations applied")

	return db, nil
}

func closeDB(db *store.DB, log *logger.Logger) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		log.Err(err).Msg("error closing database")
	}
}

// Handler returns the router. It serves requests without a listening
// socket, which is how test harnesses and serverless hosts use the app.
func (a *App) Handler() http.Handler {
	return a.server.Handler()
}

// Run listens until a termination signal arrives. When listening is
// disabled by the runtime settings it returns ErrListenDisabled at once.
func (a *App) Run() error {
	if !a.cfg.Runtime.ListenEnabled() {
		return ErrListenDisabled
	}

	a.logger.Info().Str("address", a.cfg.ListenAddress()).Msg("starting server")
	return a.server.RunServer()
}

// Close releases the database pool.
func (a *App) Close() {
	closeDB(a.db, a.logger)
}

// ErrListenDisabled is returned by Run under a test harness or a serverless
// host.
var ErrListenDisabled = errors.New("listening is disabled for this runtime")
