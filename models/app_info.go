// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppInfo is the body returned by GET /api/version.
type AppInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
