// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the sweet shop REST API.
//
// [ShopAdapter] hides the transport from the CLI. Non-2xx responses are
// mapped by mapHTTPError to the sentinel errors in errors.go so callers can
// use [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-sweet-shop/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ShopAdapter talks to the sweet shop server. Implementations keep the
// bearer token issued by Register or Login and attach it to authenticated
// requests.
type ShopAdapter interface {
	// SetToken stores the bearer token used by authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when none is set.
	Token() string

	// Health probes GET /health. The decoded body is returned even when the
	// server reports a database failure, together with the mapped error.
	Health(ctx context.Context) (models.HealthStatus, error)

	Version(ctx context.Context) (models.AppInfo, error)

	// Register creates an account and stores the issued token.
	Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// Login authenticates and stores the issued token.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// Me returns the account of the stored token.
	Me(ctx context.Context) (models.User, error)

	ListSweets(ctx context.Context, filter models.SweetFilter) ([]models.Sweet, error)
	GetSweet(ctx context.Context, id int64) (models.Sweet, error)
	CreateSweet(ctx context.Context, sweet models.Sweet) (models.Sweet, error)
	UpdateSweet(ctx context.Context, sweet models.Sweet) (models.Sweet, error)
	DeleteSweet(ctx context.Context, id int64) error
}
