// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-sweet-shop/internal/utils"
	"github.com/MKhiriev/go-sweet-shop/models"
)

const (
	healthMessageOK         = "Sweet Shop API is running"
	healthMessageDBFailed   = "Sweet Shop API is running but database connection failed"
	healthDatabaseConnected = "connected"
)

// health probes the database. Any failure is reported as a 500 carrying
// the driver's message; the server itself stays up.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.CheckDatabase(r.Context()); err != nil {
		utils.WriteJSON(w, models.HealthStatus{
			Status:  models.HealthStatusError,
			Message: healthMessageDBFailed,
			Error:   err.Error(),
		}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.HealthStatus{
		Status:   models.HealthStatusOK,
		Message:  healthMessageOK,
		Database: healthDatabaseConnected,
	}, http.StatusOK)
}
