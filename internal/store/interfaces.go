// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Package store implements persistence for users and sweets on top of
// database/sql. PostgreSQL (pgx) and SQLite are supported; the driver is
// chosen from the DSN.
package store

import (
	"context"

	"github.com/MKhiriev/go-sweet-shop/models"
)

// UserRepository persists shop accounts.
type UserRepository interface {
	// CreateUser inserts the user and returns it with the assigned ID.
	// Returns ErrLoginAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns ErrNoUserWasFound when nothing matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID returns ErrNoUserWasFound when nothing matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// SweetRepository persists the product catalogue.
type SweetRepository interface {
	CreateSweet(ctx context.Context, sweet models.Sweet) (models.Sweet, error)

	// ListSweets returns the sweets matching filter ordered by ID.
	ListSweets(ctx context.Context, filter models.SweetFilter) ([]models.Sweet, error)

	// GetSweet returns ErrSweetNotFound when the ID is unknown.
	GetSweet(ctx context.Context, id int64) (models.Sweet, error)

	// UpdateSweet replaces all mutable fields of the sweet with sweet.ID.
	// Returns ErrSweetNotFound when the ID is unknown.
	UpdateSweet(ctx context.Context, sweet models.Sweet) (models.Sweet, error)

	// DeleteSweet returns ErrSweetNotFound when the ID is unknown.
	DeleteSweet(ctx context.Context, id int64) error
}

// HealthChecker probes the database.
type HealthChecker interface {
	// Ping runs a trivial query and returns the driver error unchanged.
	Ping(ctx context.Context) error
}
