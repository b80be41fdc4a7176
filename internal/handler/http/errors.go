// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned when the Authorization header is missing.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrRequestBodyTooLarge is returned when a body exceeds the configured limit.
	ErrRequestBodyTooLarge = errors.New("request entity too large")

	// ErrInvalidRequestBody is returned when a body cannot be decoded.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrEmptyRequestBody is returned when a body is required but absent.
	ErrEmptyRequestBody = errors.New("request body is empty")

	// ErrInvalidQueryParam is returned for a malformed filter parameter.
	ErrInvalidQueryParam = errors.New("invalid query parameter")

	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)
