// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-sweet-shop/internal/service"
	"github.com/MKhiriev/go-sweet-shop/internal/store"
	"github.com/MKhiriev/go-sweet-shop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testUser = models.User{
	UserID:    7,
	Username:  "alice",
	Email:     "alice@example.com",
	CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
}

func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed, UserID: testUser.UserID}
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, strings.NewReader(string(b)))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestRegister(t *testing.T) {
	credentials := models.Credentials{Username: "alice", Email: "alice@example.com", Password: "secret1"}

	tests := []struct {
		name        string
		registerErr error
		tokenErr    error
		wantStatus  int
		wantMessage string
	}{
		{name: "created", wantStatus: http.StatusCreated},
		{
			name:        "invalid data",
			registerErr: fmt.Errorf("%w: password is too short", service.ErrInvalidDataProvided),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "invalid data provided: password is too short",
		},
		{
			name:        "duplicate username",
			registerErr: fmt.Errorf("user creation ended with error: %w", store.ErrLoginAlreadyExists),
			wantStatus:  http.StatusConflict,
			wantMessage: store.ErrLoginAlreadyExists.Error(),
		},
		{
			name:        "database unavailable",
			registerErr: fmt.Errorf("user creation ended with error: %w", store.ErrDatabaseUnavailable),
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: store.ErrDatabaseUnavailable.Error(),
		},
		{
			name:        "token creation fails",
			tokenErr:    service.ErrTokenCreationFailed,
			wantStatus:  http.StatusInternalServerError,
			wantMessage: http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)

			if tt.registerErr != nil {
				m.auth.EXPECT().Register(gomock.Any(), credentials).Return(models.User{}, tt.registerErr)
			} else {
				m.auth.EXPECT().Register(gomock.Any(), credentials).Return(testUser, nil)
				m.auth.EXPECT().CreateToken(gomock.Any(), testUser).Return(stubToken("signed"), tt.tokenErr)
			}

			rr := serve(router, jsonRequest(t, http.MethodPost, "/api/auth/register", credentials))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeErrorResponse(t, rr.Body).Message)
				return
			}

			assert.Equal(t, "Bearer signed", rr.Header().Get("Authorization"))
			var resp models.AuthResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "signed", resp.Token)
			assert.Equal(t, testUser, resp.User)
		})
	}
}

func TestRegister_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"username":`},
		{name: "empty body", body: ``},
		{name: "wrong type", body: `{"username":42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newTestRouter(t)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := serve(router, req)

			require.Equal(t, http.StatusBadRequest, rr.Code)
			resp := decodeErrorResponse(t, rr.Body)
			assert.Equal(t, "error", resp.Status)
			assert.True(t, strings.HasPrefix(resp.Message, ErrInvalidRequestBody.Error()))
		})
	}
}

func TestRegister_FormEncoded(t *testing.T) {
	router, m := newTestRouter(t)

	want := models.Credentials{Username: "bob", Password: "hunter22"}
	m.auth.EXPECT().Register(gomock.Any(), want).Return(testUser, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), testUser).Return(stubToken("form"), nil)

	form := url.Values{"username": {"bob"}, "password": {"hunter22"}}
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := serve(router, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "Bearer form", rr.Header().Get("Authorization"))
}

func TestLogin(t *testing.T) {
	credentials := models.Credentials{Username: "alice", Password: "secret1"}

	tests := []struct {
		name       string
		loginErr   error
		wantStatus int
	}{
		{name: "ok", wantStatus: http.StatusOK},
		{name: "wrong password", loginErr: service.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{name: "empty fields", loginErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "unexpected", loginErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)

			if tt.loginErr != nil {
				m.auth.EXPECT().Login(gomock.Any(), credentials).Return(models.User{}, tt.loginErr)
			} else {
				m.auth.EXPECT().Login(gomock.Any(), credentials).Return(testUser, nil)
				m.auth.EXPECT().CreateToken(gomock.Any(), testUser).Return(stubToken("tok"), nil)
			}

			rr := serve(router, jsonRequest(t, http.MethodPost, "/api/auth/login", credentials))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.loginErr == nil {
				assert.Equal(t, "Bearer tok", rr.Header().Get("Authorization"))
			}
		})
	}
}

func TestLogin_UnknownUserAndWrongPasswordLookAlike(t *testing.T) {
	router, m := newTestRouter(t)
	m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrInvalidCredentials).Times(2)

	first := serve(router, jsonRequest(t, http.MethodPost, "/api/auth/login", models.Credentials{Username: "ghost", Password: "whatever"}))
	second := serve(router, jsonRequest(t, http.MethodPost, "/api/auth/login", models.Credentials{Username: "alice", Password: "wrong!"}))

	assert.Equal(t, first.Code, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestMe(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		parseErr   error
		getUserErr error
		wantStatus int
		wantUser   bool
	}{
		{name: "valid token", header: "Bearer good", wantStatus: http.StatusOK, wantUser: true},
		{name: "lowercase scheme", header: "bearer good", wantStatus: http.StatusOK, wantUser: true},
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "expired token", header: "Bearer old", parseErr: service.ErrTokenIsExpired, wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer bad", parseErr: service.ErrTokenIsExpiredOrInvalid, wantStatus: http.StatusUnauthorized},
		{
			name:       "user deleted",
			header:     "Bearer good",
			getUserErr: fmt.Errorf("user lookup failed: %w", store.ErrNoUserWasFound),
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)

			tokenString := ""
			if fields := strings.Fields(tt.header); len(fields) == 2 && strings.EqualFold(fields[0], "bearer") {
				tokenString = fields[1]
			}
			if tokenString != "" {
				if tt.parseErr != nil {
					m.auth.EXPECT().ParseToken(gomock.Any(), tokenString).Return(models.Token{}, tt.parseErr)
				} else {
					m.auth.EXPECT().ParseToken(gomock.Any(), tokenString).Return(stubToken(tokenString), nil)
					m.auth.EXPECT().GetUser(gomock.Any(), testUser.UserID).Return(testUser, tt.getUserErr)
				}
			}

			req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := serve(router, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantUser {
				var got models.User
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
				assert.Equal(t, testUser, got)
			} else {
				assert.Equal(t, "error", decodeErrorResponse(t, rr.Body).Status)
			}
		})
	}
}
