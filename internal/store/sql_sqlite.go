// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/mattn/go-sqlite3"
)

// NewConnectSQLite opens a SQLite database. The file is created on first
// use. A single connection is kept so that in-memory databases and writes
// are shared by every request.
func NewConnectSQLite(dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(string(DriverSQLite), dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening sqlite database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	conn.SetMaxOpenConns(1)

	log.Debug().Str("func", "NewConnectSQLite").Str("dsn", dsn).Msg("sqlite database opened")

	return newDB(conn, DriverSQLite, log), nil
}

// SQLiteErrorClassifier classifies go-sqlite3 errors by result code.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return UniqueViolation
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrCantOpen:
		return Retryable
	}

	return NonRetryable
}
