// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// NewConnectPostgres opens a pgx-backed pool for dsn.
func NewConnectPostgres(dsn string, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(string(DriverPostgres), dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	log.Info().Str("func", "NewConnectPostgres").Msg("postgres pool opened")

	return newDB(conn, DriverPostgres, log), nil
}
