// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-sweet-shop/internal/config"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/internal/store"
	"github.com/MKhiriev/go-sweet-shop/internal/validators"
)

// Services bundles the services handed to the transport layer.
type Services struct {
	AuthService    AuthService
	SweetService   SweetService
	HealthService  HealthService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewShopValidator()

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		SweetService:   NewSweetService(storages.SweetRepository, validator, logger),
		HealthService:  NewHealthService(storages.HealthChecker, logger),
		AppInfoService: appInfoService,
	}, nil
}
