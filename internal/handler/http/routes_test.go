// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-sweet-shop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRoutes_OptionsShortCircuits(t *testing.T) {
	paths := []string{
		"/",
		"/health",
		"/api/auth/login",
		"/api/sweets/42",
		"/does/not/exist",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			// no expectations: OPTIONS must never reach a service
			router, _ := newTestRouter(t)

			req := httptest.NewRequest(http.MethodOptions, path, nil)
			req.Header.Set("Origin", "https://shop.example")
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			rr := serve(router, req)

			assert.Equal(t, http.StatusNoContent, rr.Code)
			assert.Empty(t, rr.Body.String())
			assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestRoutes_CORSHeadersOnEveryResponse(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetAppInfo(gomock.Any()).Return(models.AppInfo{Name: "sweet-shop", Version: "test"})

	requests := []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/version", nil),
		httptest.NewRequest(http.MethodGet, "/nope", nil),
	}
	requests[1].Header.Set("Origin", "https://shop.example")

	for _, req := range requests {
		rr := serve(router, req)

		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS, PATCH", rr.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "Content-Type, Authorization, X-Requested-With", rr.Header().Get("Access-Control-Allow-Headers"))
		assert.Equal(t, "Content-Type, Authorization", rr.Header().Get("Access-Control-Expose-Headers"))
	}
}

func TestRoutes_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	resp := decodeErrorResponse(t, rr.Body)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, ErrRouteNotFound.Error(), resp.Message)
}

func TestRoutes_MethodNotAllowed(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := serve(router, httptest.NewRequest(http.MethodPatch, "/health", nil))

	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	resp := decodeErrorResponse(t, rr.Body)
	assert.Equal(t, ErrMethodNotAllowed.Error(), resp.Message)
}

func TestRoutes_ProtectedRoutesRequireToken(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/auth/me"},
		{http.MethodPost, "/api/sweets"},
		{http.MethodPut, "/api/sweets/1"},
		{http.MethodDelete, "/api/sweets/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			router, _ := newTestRouter(t)

			rr := serve(router, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestRoutes_TraceIDHeaderIsSet(t *testing.T) {
	router, m := newTestRouter(t)
	m.health.EXPECT().CheckDatabase(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		return nil
	})

	rr := serve(router, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}
