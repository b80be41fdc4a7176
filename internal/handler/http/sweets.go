// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-sweet-shop/internal/utils"
	"github.com/MKhiriev/go-sweet-shop/models"
	"github.com/go-chi/chi/v5"
)

// Query parameters accepted by GET /api/sweets.
const (
	queryName     = "name"
	queryCategory = "category"
	queryMinPrice = "min_price"
	queryMaxPrice = "max_price"
)

func (h *Handler) listSweets(w http.ResponseWriter, r *http.Request) {
	filter, err := parseSweetFilter(r.URL.Query())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	sweets, err := h.services.SweetService.ListSweets(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	// an empty catalogue is "[]", not "null"
	if sweets == nil {
		sweets = []models.Sweet{}
	}
	utils.WriteJSON(w, sweets, http.StatusOK)
}

func (h *Handler) getSweet(w http.ResponseWriter, r *http.Request) {
	id, err := sweetIDParam(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	sweet, err := h.services.SweetService.GetSweet(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, sweet, http.StatusOK)
}

func (h *Handler) createSweet(w http.ResponseWriter, r *http.Request) {
	var sweet models.Sweet
	if err := decodeBody(r, &sweet); err != nil {
		writeServiceError(w, r, err)
		return
	}

	created, err := h.services.SweetService.CreateSweet(r.Context(), sweet)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateSweet(w http.ResponseWriter, r *http.Request) {
	id, err := sweetIDParam(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var sweet models.Sweet
	if err = decodeBody(r, &sweet); err != nil {
		writeServiceError(w, r, err)
		return
	}
	// the path wins over any id in the body
	sweet.ID = id

	updated, err := h.services.SweetService.UpdateSweet(r.Context(), sweet)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteSweet(w http.ResponseWriter, r *http.Request) {
	id, err := sweetIDParam(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err = h.services.SweetService.DeleteSweet(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func sweetIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q is not an integer", ErrInvalidQueryParam, raw)
	}
	return id, nil
}

func parseSweetFilter(query url.Values) (models.SweetFilter, error) {
	filter := models.SweetFilter{
		Name:     strings.TrimSpace(query.Get(queryName)),
		Category: strings.TrimSpace(query.Get(queryCategory)),
	}

	var err error
	if filter.MinPrice, err = parsePriceParam(query, queryMinPrice); err != nil {
		return models.SweetFilter{}, err
	}
	if filter.MaxPrice, err = parsePriceParam(query, queryMaxPrice); err != nil {
		return models.SweetFilter{}, err
	}

	return filter, nil
}

// parsePriceParam returns nil when the parameter is absent or empty.
func parsePriceParam(query url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return nil, nil
	}

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q is not a number", ErrInvalidQueryParam, key, raw)
	}
	return &price, nil
}
