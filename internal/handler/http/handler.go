// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-sweet-shop/internal/config"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/internal/service"
)

// Handler holds the dependencies shared by every HTTP handler and
// middleware.
type Handler struct {
	services *service.Services

	bodyLimit int64

	logger *logger.Logger
}

// NewHandler falls back to config.DefaultBodyLimit when cfg carries none.
func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	bodyLimit := cfg.BodyLimit
	if bodyLimit <= 0 {
		bodyLimit = config.DefaultBodyLimit
	}

	logger.Info().Int64("body_limit", bodyLimit).Msg("http handler created")
	return &Handler{
		services:  services,
		bodyLimit: bodyLimit,
		logger:    logger,
	}
}
