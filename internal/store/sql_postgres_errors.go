// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql/driver"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification groups driver errors by how callers should react.
type ErrorClassification int

const (
	// NonRetryable errors are returned to the caller as is.
	NonRetryable ErrorClassification = iota

	// Retryable errors mean the database could not be reached or the
	// transaction was aborted; the request may succeed later.
	Retryable

	// UniqueViolation means a unique constraint rejected the row.
	UniqueViolation
)

// ErrorClassificator maps driver errors to an ErrorClassification.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier classifies pgx errors by SQLSTATE.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) || errors.Is(err, driver.ErrBadConn) {
		return Retryable
	}

	return NonRetryable
}

func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation: // 23505
		return UniqueViolation

	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return Retryable

	case pgerrcode.TransactionRollback, // 40000
		pgerrcode.SerializationFailure, // 40001
		pgerrcode.DeadlockDetected:     // 40P01
		return Retryable

	case pgerrcode.CannotConnectNow, // 57P03
		pgerrcode.AdminShutdown: // 57P01
		return Retryable
	}

	return NonRetryable
}
