// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/rs/cors"
)

var (
	corsAllowedMethods = []string{
		http.MethodGet, http.MethodPost, http.MethodPut,
		http.MethodDelete, http.MethodOptions, http.MethodPatch,
	}
	corsAllowedHeaders = []string{"Content-Type", "Authorization", "X-Requested-With"}
	corsExposedHeaders = []string{"Content-Type", "Authorization"}
)

// CORS header values written on every response.
var (
	corsAllowMethodsValue  = strings.Join(corsAllowedMethods, ", ")
	corsAllowHeadersValue  = strings.Join(corsAllowedHeaders, ", ")
	corsExposeHeadersValue = strings.Join(corsExposedHeaders, ", ")
)

// withCORSPolicy applies the library CORS policy. Preflight requests are
// passed through so that withCORSHeaders answers every OPTIONS request the
// same way.
func (h *Handler) withCORSPolicy(next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:     []string{"*"},
		AllowedMethods:     corsAllowedMethods,
		AllowedHeaders:     corsAllowedHeaders,
		ExposedHeaders:     corsExposedHeaders,
		OptionsPassthrough: true,
	}).Handler(next)
}

// withCORSHeaders sets the four CORS headers on every response and answers
// any OPTIONS request with 204 before routing.
func (h *Handler) withCORSHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set("Access-Control-Allow-Origin", "*")
		header.Set("Access-Control-Allow-Methods", corsAllowMethodsValue)
		header.Set("Access-Control-Allow-Headers", corsAllowHeadersValue)
		header.Set("Access-Control-Expose-Headers", corsExposeHeadersValue)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
