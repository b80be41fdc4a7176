// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON body of every non-2xx API response.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// NewErrorResponse builds an ErrorResponse with the "error" status.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Status: HealthStatusError, Message: message}
}
