// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-sweet-shop/internal/service"
	"github.com/MKhiriev/go-sweet-shop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// credentialsBody returns a JSON credentials document of exactly size bytes.
func credentialsBody(size int) string {
	const prefix = `{"username":"alice","password":"`
	const suffix = `"}`
	return prefix + strings.Repeat("p", size-len(prefix)-len(suffix)) + suffix
}

func TestBodyLimit_DefaultAccepts49MB(t *testing.T) {
	router, m := newTestRouter(t)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrInvalidCredentials)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(credentialsBody(49<<20)))
	req.Header.Set("Content-Type", "application/json")
	rr := serve(router, req)

	// the body reached the service, which rejected the password
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestBodyLimit_DefaultRejectsOver50MB(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(credentialsBody(50<<20+1)))
	req.Header.Set("Content-Type", "application/json")
	rr := serve(router, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	resp := decodeErrorResponse(t, rr.Body)
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, ErrRequestBodyTooLarge.Error(), resp.Message)
}

func TestBodyLimit_UnknownLengthFailsWhileDecoding(t *testing.T) {
	router, _ := newTestRouterWithLimit(t, 32)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", nil)
	req.Body = io.NopCloser(strings.NewReader(credentialsBody(64)))
	req.ContentLength = -1
	req.Header.Set("Content-Type", "application/json")
	rr := serve(router, req)

	require.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
	assert.Contains(t, decodeErrorResponse(t, rr.Body).Message, ErrRequestBodyTooLarge.Error())
}

func TestBodyLimit_FormBodyIsLimitedToo(t *testing.T) {
	router, _ := newTestRouterWithLimit(t, 16)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	req.Body = io.NopCloser(strings.NewReader("username=alice&password=" + strings.Repeat("x", 64)))
	req.ContentLength = -1
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := serve(router, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rr.Code)
}

func TestWithBodyLimit_PassesSmallBodies(t *testing.T) {
	h := newTestHandler()
	h.bodyLimit = 8

	var got string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		got = string(b)
		w.WriteHeader(http.StatusOK)
	})

	rr := httptest.NewRecorder()
	h.withBodyLimit(next).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", strings.NewReader("12345678")))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "12345678", got)
}
