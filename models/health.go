// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Health check statuses.
const (
	HealthStatusOK    = "ok"
	HealthStatusError = "error"
)

// HealthStatus is the body returned by GET /health.
type HealthStatus struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Database string `json:"database,omitempty"`
	Error    string `json:"error,omitempty"`
}
