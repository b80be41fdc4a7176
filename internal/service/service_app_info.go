// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-sweet-shop/internal/config"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/models"
)

// AppName is reported by GET /api/version.
const AppName = "sweet-shop"

type appInfoService struct {
	info models.AppInfo

	logger *logger.Logger
}

// NewAppInfoService returns ErrVersionIsNotSpecified when cfg carries no
// version.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info:   models.AppInfo{Name: AppName, Version: cfg.Version},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return s.info
}
