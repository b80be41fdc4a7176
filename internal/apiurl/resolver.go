// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apiurl

import (
	"strings"
	"time"
)

// Signal keys, in resolution order.
const (
	PublicAPIURLKey       = "VITE_PUBLIC_API_URL"
	APIURLKey             = "VITE_API_URL"
	LegacyPublicAPIURLKey = "REACT_APP_PUBLIC_API_URL"
)

// DefaultTimeout is the request timeout handed to the HTTP client factory.
const DefaultTimeout = 10 * time.Second

// Sources are the signals the base URL is resolved from.
type Sources struct {
	// PublicAPIURL is the public API URL build variable.
	PublicAPIURL string
	// APIURL is the generic API URL build variable.
	APIURL string
	// Production reports a production build.
	Production bool
	// Vars is an open-ended view of the environment. Keys that are not part
	// of the typed fields above are looked up here.
	Vars map[string]string
}

// Lookup returns the value of an untyped key, or "" when it is absent.
func (s Sources) Lookup(key string) string {
	return s.Vars[key]
}

// Resolve returns the base URL for s. The first non-empty value wins:
//  1. PublicAPIURL
//  2. APIURL
//  3. the legacy REACT_APP_PUBLIC_API_URL key from Vars
//
// Otherwise the result is "", meaning same origin.
func Resolve(s Sources) string {
	if s.PublicAPIURL != "" {
		return s.PublicAPIURL
	}

	if s.APIURL != "" {
		return s.APIURL
	}

	if legacy := s.Lookup(LegacyPublicAPIURLKey); legacy != "" {
		return legacy
	}

	// production builds are served by the API host and development runs
	// behind a proxy, so both use the same origin
	return ""
}

// ClientConfig is the configuration handed to an HTTP client factory.
type ClientConfig struct {
	// BaseURL is the resolved base URL. Empty means unset (same origin).
	BaseURL string `json:"baseURL,omitempty"`
	// Timeout is the per-request timeout.
	Timeout time.Duration `json:"timeout"`
}

// Resolver holds a base URL resolved once. The zero value resolves every
// path against the same origin.
type Resolver struct {
	baseURL string
}

// New resolves the base URL from s.
func New(s Sources) Resolver {
	return Resolver{baseURL: Resolve(s)}
}

// BaseURL returns the resolved base URL.
func (r Resolver) BaseURL() string {
	return r.baseURL
}

// URL joins path onto the base URL. A leading "/" is added to path when it
// is missing; the rest of path is kept as is.
func (r Resolver) URL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return strings.TrimSuffix(r.baseURL, "/") + path
}

// ClientConfig returns the HTTP client settings for the resolved base URL.
func (r Resolver) ClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL: r.baseURL,
		Timeout: DefaultTimeout,
	}
}
