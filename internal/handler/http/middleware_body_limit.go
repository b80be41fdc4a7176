// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/internal/utils"
)

// withBodyLimit caps request bodies at h.bodyLimit bytes. A declared
// Content-Length above the limit is rejected up front; chunked bodies fail
// while being decoded.
func (h *Handler) withBodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > h.bodyLimit {
			logger.FromRequest(r).Warn().
				Int64("content_length", r.ContentLength).
				Int64("limit", h.bodyLimit).
				Msg("request body too large")
			utils.WriteError(w, ErrRequestBodyTooLarge.Error(), http.StatusRequestEntityTooLarge)
			return
		}

		if r.Body != nil && r.Body != http.NoBody {
			r.Body = http.MaxBytesReader(w, r.Body, h.bodyLimit)
		}

		next.ServeHTTP(w, r)
	})
}
