// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Package service holds the business rules of the shop: account
// registration and login, JWT handling, the sweets catalogue and the
// database health probe.
package service

import (
	"context"

	"github.com/MKhiriev/go-sweet-shop/models"
)

// AuthService registers and authenticates shop accounts.
type AuthService interface {
	// Register validates the credentials, hashes the password and stores
	// the account.
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login returns the account when the password matches. Unknown users
	// and wrong passwords both yield ErrInvalidCredentials.
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// GetUser returns the account with userID.
	GetUser(ctx context.Context, userID int64) (models.User, error)
}

// SweetService manages the product catalogue.
type SweetService interface {
	CreateSweet(ctx context.Context, sweet models.Sweet) (models.Sweet, error)
	ListSweets(ctx context.Context, filter models.SweetFilter) ([]models.Sweet, error)
	GetSweet(ctx context.Context, id int64) (models.Sweet, error)
	UpdateSweet(ctx context.Context, sweet models.Sweet) (models.Sweet, error)
	DeleteSweet(ctx context.Context, id int64) error
}

// HealthService probes the backing database.
type HealthService interface {
	// CheckDatabase returns the driver error unchanged so that its message
	// can be reported to the caller.
	CheckDatabase(ctx context.Context) error
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}
