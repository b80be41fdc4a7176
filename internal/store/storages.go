// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/models"
)

// Storages bundles the repositories handed to the service layer.
type Storages struct {
	UserRepository  UserRepository
	SweetRepository SweetRepository
	HealthChecker   HealthChecker
}

// NewStorages builds SQL repositories on db. With a nil db, which happens
// when the server starts without a DSN, every repository fails with
// ErrDatabaseUnavailable and the health check reports
// ErrDatabaseNotConfigured.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	if db == nil {
		log.Warn().Msg("no database configured; storage calls will fail")
		return &Storages{
			UserRepository:  unavailable{},
			SweetRepository: unavailable{},
			HealthChecker:   unavailable{},
		}
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		SweetRepository: NewSweetRepository(db, log),
		HealthChecker:   db,
	}
}

// unavailable stands in for every repository when no database is configured.
type unavailable struct{}

func (unavailable) Ping(context.Context) error { return ErrDatabaseNotConfigured }

func (unavailable) CreateUser(context.Context, models.User) (models.User, error) {
	return models.User{}, ErrDatabaseUnavailable
}

func (unavailable) FindUserByUsername(context.Context, string) (models.User, error) {
	return models.User{}, ErrDatabaseUnavailable
}

func (unavailable) FindUserByID(context.Context, int64) (models.User, error) {
	return models.User{}, ErrDatabaseUnavailable
}

func (unavailable) CreateSweet(context.Context, models.Sweet) (models.Sweet, error) {
	return models.Sweet{}, ErrDatabaseUnavailable
}

func (unavailable) ListSweets(context.Context, models.SweetFilter) ([]models.Sweet, error) {
	return nil, ErrDatabaseUnavailable
}

func (unavailable) GetSweet(context.Context, int64) (models.Sweet, error) {
	return models.Sweet{}, ErrDatabaseUnavailable
}

func (unavailable) UpdateSweet(context.Context, models.Sweet) (models.Sweet, error) {
	return models.Sweet{}, ErrDatabaseUnavailable
}

func (unavailable) DeleteSweet(context.Context, int64) error {
	return ErrDatabaseUnavailable
}
