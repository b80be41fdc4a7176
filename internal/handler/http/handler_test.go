// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-sweet-shop/internal/config"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/internal/mock"
	"github.com/MKhiriev/go-sweet-shop/internal/service"
	"github.com/MKhiriev/go-sweet-shop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- Helpers ----

// serviceMocks holds the gomock doubles behind a test router.
type serviceMocks struct {
	auth    *mock.MockAuthService
	sweets  *mock.MockSweetService
	health  *mock.MockHealthService
	appInfo *mock.MockAppInfoService
}

func newServiceMocks(t *testing.T) (*serviceMocks, *service.Services) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := &serviceMocks{
		auth:    mock.NewMockAuthService(ctrl),
		sweets:  mock.NewMockSweetService(ctrl),
		health:  mock.NewMockHealthService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	return m, &service.Services{
		AuthService:    m.auth,
		SweetService:   m.sweets,
		HealthService:  m.health,
		AppInfoService: m.appInfo,
	}
}

// newTestRouter returns the full router with a default body limit.
func newTestRouter(t *testing.T) (http.Handler, *serviceMocks) {
	t.Helper()
	return newTestRouterWithLimit(t, 0)
}

func newTestRouterWithLimit(t *testing.T, bodyLimit int64) (http.Handler, *serviceMocks) {
	t.Helper()
	m, services := newServiceMocks(t)
	h := NewHandler(services, config.Server{BodyLimit: bodyLimit}, logger.Nop())
	return h.Init(), m
}

func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop(), bodyLimit: config.DefaultBodyLimit}
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeErrorResponse(t *testing.T, body io.Reader) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}

// ---- NewHandler ----

func TestNewHandler_BodyLimit(t *testing.T) {
	tests := []struct {
		name      string
		bodyLimit int64
		want      int64
	}{
		{name: "configured limit is kept", bodyLimit: 1024, want: 1024},
		{name: "zero falls back to default", bodyLimit: 0, want: config.DefaultBodyLimit},
		{name: "negative falls back to default", bodyLimit: -1, want: config.DefaultBodyLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&service.Services{}, config.Server{BodyLimit: tt.bodyLimit}, logger.Nop())
			assert.Equal(t, tt.want, h.bodyLimit)
		})
	}
}
