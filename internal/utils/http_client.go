// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/MKhiriev/go-sweet-shop/internal/apiurl"
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty-backed client configured from the resolved
// API client configuration.
//
// When cfg carries no base URL the client falls back to origin, so the
// relative paths produced by an empty resolver still reach a server.
// A zero timeout leaves resty's default in place.
func NewHTTPClient(cfg apiurl.ClientConfig, origin string) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", contentTypeJSON)

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = origin
	}
	if baseURL != "" {
		client.SetBaseURL(baseURL)
	}

	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &HTTPClient{Client: client}
}
