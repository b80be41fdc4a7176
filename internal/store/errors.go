// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrLoginAlreadyExists is returned when a username is already taken.
	ErrLoginAlreadyExists = errors.New("username already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSweetNotFound is returned when no sweet has the requested ID.
	ErrSweetNotFound = errors.New("sweet was not found")

	// ErrDatabaseUnavailable is returned when the database cannot serve the
	// request, either because no DSN was configured or the connection failed.
	ErrDatabaseUnavailable = errors.New("database unavailable")

	// ErrDatabaseNotConfigured is reported by the health check when the
	// server was started without a DSN.
	ErrDatabaseNotConfigured = errors.New("database is not configured")

	// ErrUnsupportedDSN is returned for a DSN whose scheme selects no driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

var (
	// ErrBuildingSQLQuery is returned when the query builder fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a statement fails in the database.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a single row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
