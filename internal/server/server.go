// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-sweet-shop/internal/config"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
)

type server struct {
	handler    http.Handler
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer builds the HTTP server for handler without binding a socket.
func NewServer(handler http.Handler, address string, cfg config.Server, logger *logger.Logger) (Server, error) {
	if handler == nil {
		return nil, errNoHandlerProvided
	}

	logger.Info().Str("address", address).Msg("creating new server...")
	return &server{
		handler:    handler,
		httpServer: newHTTPServer(handler, address, cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) Handler() http.Handler {
	return s.handler
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives and then shuts
// the server down gracefully.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	listener, err := net.Listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.httpServer.server.Addr, err)
	}

	return s.run(ctx, listener)
}

func (s *server) run(ctx context.Context, listener net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(listener)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("error running server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutdown signal received")
	s.Shutdown()

	if err := <-serveErr; err != nil {
		return fmt.Errorf("error running server: %w", err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
