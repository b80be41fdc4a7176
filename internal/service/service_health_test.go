// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/internal/mock"
	"github.com/MKhiriev/go-sweet-shop/internal/store"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHealthService_CheckDatabase_OK(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mock.NewMockHealthChecker(ctrl)
	checker.EXPECT().Ping(gomock.Any()).Return(nil)

	svc := NewHealthService(checker, logger.Nop())

	assert.NoError(t, svc.CheckDatabase(context.Background()))
}

func TestHealthService_CheckDatabase_ErrorIsUnwrapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mock.NewMockHealthChecker(ctrl)
	pingErr := errors.New("connection refused")
	checker.EXPECT().Ping(gomock.Any()).Return(pingErr)

	svc := NewHealthService(checker, logger.Nop())

	err := svc.CheckDatabase(context.Background())
	assert.Same(t, pingErr, err)
	assert.Equal(t, "connection refused", err.Error())
}

func TestHealthService_CheckDatabase_HasDeadline(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mock.NewMockHealthChecker(ctrl)
	checker.EXPECT().Ping(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok, "probe must be bounded")
		return nil
	})

	assert.NoError(t, NewHealthService(checker, logger.Nop()).CheckDatabase(context.Background()))
}

func TestHealthService_NotConfigured(t *testing.T) {
	storages := store.NewStorages(nil, logger.Nop())

	err := NewHealthService(storages.HealthChecker, logger.Nop()).CheckDatabase(context.Background())
	assert.ErrorIs(t, err, store.ErrDatabaseNotConfigured)
}
