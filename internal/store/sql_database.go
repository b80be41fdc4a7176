// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-sweet-shop/internal/config"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/MKhiriev/go-sweet-shop/migrations"
)

// Driver is the database/sql driver name backing a DB.
type Driver string

const (
	DriverPostgres Driver = "pgx"
	DriverSQLite   Driver = "sqlite3"
)

// DSN prefixes that select a driver.
const (
	postgresScheme   = "postgres://"
	postgresqlScheme = "postgresql://"
	sqliteScheme     = "sqlite://"
	sqliteFilePrefix = "file:"
)

// DB wraps *sql.DB with the dialect-specific pieces the repositories need:
// the placeholder format for the query builder and the error classifier.
type DB struct {
	*sql.DB
	driver             Driver
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, driver Driver, log *logger.Logger) *DB {
	db := &DB{
		DB:     conn,
		driver: driver,
		logger: log,
	}

	switch driver {
	case DriverSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// NewConnect opens a connection pool for the DSN in cfg. The driver is
// chosen from the DSN prefix. No round trip is made; use Ping to probe.
func NewConnect(cfg config.DB, log *logger.Logger) (*DB, error) {
	driver, dsn, err := parseDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	switch driver {
	case DriverSQLite:
		return NewConnectSQLite(dsn, log)
	default:
		return NewConnectPostgres(dsn, log)
	}
}

// parseDSN maps a DSN to its driver and the data source name that driver
// expects. "sqlite://" is stripped; everything else is passed through.
func parseDSN(dsn string) (Driver, string, error) {
	switch {
	case strings.HasPrefix(dsn, postgresScheme), strings.HasPrefix(dsn, postgresqlScheme):
		return DriverPostgres, dsn, nil
	case strings.HasPrefix(dsn, sqliteScheme):
		return DriverSQLite, strings.TrimPrefix(dsn, sqliteScheme), nil
	case strings.HasPrefix(dsn, sqliteFilePrefix):
		return DriverSQLite, dsn, nil
	default:
		return "", "", fmt.Errorf("%w: expected postgres://, postgresql://, sqlite:// or file: prefix", ErrUnsupportedDSN)
	}
}

// Driver returns the driver backing the pool.
func (db *DB) Driver() Driver {
	return db.driver
}

// Ping runs SELECT 1. The driver error is returned as is so callers can
// surface its message.
func (db *DB) Ping(ctx context.Context) error {
	var one int
	return db.QueryRowContext(ctx, "SELECT 1").Scan(&one)
}

// Migrate applies the embedded migrations for the pool's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	dialect := migrations.Postgres
	if db.driver == DriverSQLite {
		dialect = migrations.SQLite
	}

	return migrations.Migrate(ctx, db.DB, dialect)
}

// wrapError attaches the layer sentinel to err, or ErrDatabaseUnavailable
// when the classifier reports a connection-level failure.
func (db *DB) wrapError(err, sentinel error) error {
	if db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrDatabaseUnavailable, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator.Classify(err) == UniqueViolation
}
