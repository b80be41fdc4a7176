// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/internal/service"
	"github.com/MKhiriev/go-sweet-shop/internal/store"
	"github.com/MKhiriev/go-sweet-shop/internal/utils"
)

type errorStatus struct {
	target error
	status int
}

// errorStatusTable is checked in order; the first match wins.
var errorStatusTable = []errorStatus{
	{ErrRequestBodyTooLarge, http.StatusRequestEntityTooLarge},
	{ErrInvalidRequestBody, http.StatusBadRequest},
	{ErrInvalidQueryParam, http.StatusBadRequest},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidSweetID, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{store.ErrLoginAlreadyExists, http.StatusConflict},
	{store.ErrNoUserWasFound, http.StatusUnauthorized},
	{store.ErrSweetNotFound, http.StatusNotFound},
	{store.ErrDatabaseUnavailable, http.StatusServiceUnavailable},
}

// statusFromError returns the status for err and the sentinel it matched.
func statusFromError(err error) (int, error) {
	for _, entry := range errorStatusTable {
		if errors.Is(err, entry.target) {
			return entry.status, entry.target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeServiceError logs err and writes the matching JSON error response.
// Client errors carry the full message so validation details reach the
// caller; other statuses expose only the matched sentinel.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, target := statusFromError(err)

	var message string
	switch {
	case target == nil:
		log.Err(err).Msg("unexpected error")
		message = http.StatusText(http.StatusInternalServerError)
	case status == http.StatusBadRequest || status == http.StatusRequestEntityTooLarge:
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
		message = err.Error()
	default:
		log.Debug().Err(err).Int("status", status).Msg("request failed")
		message = target.Error()
	}

	utils.WriteError(w, message, status)
}
