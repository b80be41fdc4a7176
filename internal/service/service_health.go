// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/internal/store"
)

// DefaultHealthCheckTimeout bounds a single database probe.
const DefaultHealthCheckTimeout = 5 * time.Second

type healthService struct {
	checker store.HealthChecker

	timeout time.Duration

	logger *logger.Logger
}

func NewHealthService(checker store.HealthChecker, logger *logger.Logger) HealthService {
	return &healthService{
		checker: checker,
		timeout: DefaultHealthCheckTimeout,
		logger:  logger,
	}
}

func (h *healthService) CheckDatabase(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if err := h.checker.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("database health check failed")
		return err
	}

	return nil
}
