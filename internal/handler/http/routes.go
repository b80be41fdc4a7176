// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-sweet-shop/internal/utils"
	"github.com/go-chi/chi/v5"
)

// Init builds the router.
//
// Middleware runs for every request, matched or not, in this order:
// panic recovery, trace ID, access log, CORS (library then headers, which
// answers OPTIONS with 204), body limit.
func (h *Handler) Init() http.Handler {
	router := chi.NewRouter()
	router.Use(
		h.recoverer,
		h.withTraceID,
		h.withLogging,
		h.withCORSPolicy,
		h.withCORSHeaders,
		h.withBodyLimit,
	)

	router.Get("/health", h.health)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.register)
			r.Post("/login", h.login)
			r.With(h.auth).Get("/me", h.me)
		})

		r.Route("/sweets", func(r chi.Router) {
			r.Get("/", h.listSweets)
			r.Get("/{id}", h.getSweet)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/", h.createSweet)
				r.Put("/{id}", h.updateSweet)
				r.Delete("/{id}", h.deleteSweet)
			})
		})
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, ErrRouteNotFound.Error(), http.StatusNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, ErrMethodNotAllowed.Error(), http.StatusMethodNotAllowed)
	})

	return router
}
