// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-sweet-shop/internal/apiurl"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/internal/utils"
	"github.com/MKhiriev/go-sweet-shop/models"
	"github.com/go-resty/resty/v2"
)

type httpShopAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPShopAdapter builds the REST implementation of [ShopAdapter] on the
// resolved client configuration. origin is used when the resolved base URL
// is empty.
func NewHTTPShopAdapter(cfg apiurl.ClientConfig, origin string, logger *logger.Logger) ShopAdapter {
	return &httpShopAdapter{
		client: utils.NewHTTPClient(cfg, origin),
		logger: logger,
	}
}

// SetToken implements [ShopAdapter].
func (h *httpShopAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ShopAdapter].
func (h *httpShopAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Health implements [ShopAdapter]. GET /health.
func (h *httpShopAdapter) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&status).
		SetError(&status).
		Get("/health")
	if err != nil {
		return models.HealthStatus{}, fmt.Errorf("health request: %w", err)
	}

	return status, mapHTTPError(resp)
}

// Version implements [ShopAdapter]. GET /api/version.
func (h *httpShopAdapter) Version(ctx context.Context) (models.AppInfo, error) {
	var info models.AppInfo

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/api/version")
	if err != nil {
		return models.AppInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AppInfo{}, err
	}

	return info, nil
}

// Register implements [ShopAdapter]. POST /api/auth/register.
func (h *httpShopAdapter) Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/register", credentials)
}

// Login implements [ShopAdapter]. POST /api/auth/login.
func (h *httpShopAdapter) Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error) {
	return h.authenticate(ctx, "/api/auth/login", credentials)
}

// authenticate posts credentials and stores the issued token. The
// Authorization header wins over the token in the body.
func (h *httpShopAdapter) authenticate(ctx context.Context, path string, credentials models.Credentials) (models.AuthResponse, error) {
	var authResp models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(credentials).
		SetResult(&authResp).
		Post(path)
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("request %s: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	if header := resp.Header().Get("Authorization"); header != "" {
		token, err := utils.ParseBearerToken(header)
		if err != nil {
			return models.AuthResponse{}, fmt.Errorf("parse bearer token: %w", err)
		}
		authResp.Token = token
	}

	h.SetToken(authResp.Token)
	h.logger.Debug().Str("path", path).Int64("user_id", authResp.User.UserID).Msg("authenticated")
	return authResp, nil
}

// Me implements [ShopAdapter]. GET /api/auth/me.
func (h *httpShopAdapter) Me(ctx context.Context) (models.User, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	resp, err := req.SetResult(&user).Get("/api/auth/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// ListSweets implements [ShopAdapter]. GET /api/sweets with the filter as
// query parameters.
func (h *httpShopAdapter) ListSweets(ctx context.Context, filter models.SweetFilter) ([]models.Sweet, error) {
	var sweets []models.Sweet

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParams(filterQuery(filter)).
		SetResult(&sweets).
		Get("/api/sweets")
	if err != nil {
		return nil, fmt.Errorf("list sweets request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return sweets, nil
}

// GetSweet implements [ShopAdapter]. GET /api/sweets/{id}.
func (h *httpShopAdapter) GetSweet(ctx context.Context, id int64) (models.Sweet, error) {
	var sweet models.Sweet

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&sweet).
		Get("/api/sweets/{id}")
	if err != nil {
		return models.Sweet{}, fmt.Errorf("get sweet request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Sweet{}, err
	}

	return sweet, nil
}

// CreateSweet implements [ShopAdapter]. POST /api/sweets.
func (h *httpShopAdapter) CreateSweet(ctx context.Context, sweet models.Sweet) (models.Sweet, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Sweet{}, err
	}

	var created models.Sweet
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(sweet).
		SetResult(&created).
		Post("/api/sweets")
	if err != nil {
		return models.Sweet{}, fmt.Errorf("create sweet request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Sweet{}, err
	}

	return created, nil
}

// UpdateSweet implements [ShopAdapter]. PUT /api/sweets/{id}.
func (h *httpShopAdapter) UpdateSweet(ctx context.Context, sweet models.Sweet) (models.Sweet, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return models.Sweet{}, err
	}

	var updated models.Sweet
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(sweet.ID, 10)).
		SetBody(sweet).
		SetResult(&updated).
		Put("/api/sweets/{id}")
	if err != nil {
		return models.Sweet{}, fmt.Errorf("update sweet request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Sweet{}, err
	}

	return updated, nil
}

// DeleteSweet implements [ShopAdapter]. DELETE /api/sweets/{id}.
func (h *httpShopAdapter) DeleteSweet(ctx context.Context, id int64) error {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/api/sweets/{id}")
	if err != nil {
		return fmt.Errorf("delete sweet request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpShopAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.Token()
	if token == "" {
		return nil, ErrNoToken
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", utils.BearerHeader(token)), nil
}

func filterQuery(filter models.SweetFilter) map[string]string {
	query := make(map[string]string)
	if filter.Name != "" {
		query["name"] = filter.Name
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.MinPrice != nil {
		query["min_price"] = strconv.FormatFloat(*filter.MinPrice, 'f', -1, 64)
	}
	if filter.MaxPrice != nil {
		query["max_price"] = strconv.FormatFloat(*filter.MaxPrice, 'f', -1, 64)
	}
	return query
}
