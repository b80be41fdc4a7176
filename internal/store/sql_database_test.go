// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-sweet-shop/internal/config"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseDSN(t *testing.T) {
	tests := []struct {
		dsn        string
		wantDriver Driver
		wantDSN    string
		wantErr    bool
	}{
		{"postgres://u:p@localhost:5432/shop", DriverPostgres, "postgres://u:p@localhost:5432/shop", false},
		{"postgresql://localhost/shop?sslmode=disable", DriverPostgres, "postgresql://localhost/shop?sslmode=disable", false},
		{"sqlite://./data/shop.db", DriverSQLite, "./data/shop.db", false},
		{"file:shop.db?cache=shared", DriverSQLite, "file:shop.db?cache=shared", false},
		{"mysql://localhost/shop", "", "", true},
		{"", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			gotDriver, gotDSN, err := parseDSN(tt.dsn)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedDSN)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDriver, gotDriver)
			assert.Equal(t, tt.wantDSN, gotDSN)
		})
	}
}

func TestNewConnect_SelectsDriver(t *testing.T) {
	db, err := NewConnect(config.DB{DSN: "postgres://localhost:1/none"}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(t, DriverPostgres, db.Driver())

	db, err = NewConnect(config.DB{DSN: fmt.Sprintf("file:%s?mode=memory", t.Name())}, logger.Nop())
	require.NoError(t, err)
	defer db.Close()
	assert.Equal(t, DriverSQLite, db.Driver())

	_, err = NewConnect(config.DB{DSN: "redis://localhost"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}

func TestDB_Ping(t *testing.T) {
	db, mock := newMockDB(t, DriverPostgres)

	mock.ExpectQuery(`SELECT 1`).WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	assert.NoError(t, db.Ping(context.Background()))

	mock.ExpectQuery(`SELECT 1`).WillReturnError(errors.New("connection refused"))
	err := db.Ping(context.Background())
	require.Error(t, err)
	assert.Equal(t, "connection refused", err.Error())
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"unique", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, UniqueViolation},
		{"wrapped unique", fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation}), UniqueViolation},
		{"connection failure", &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, Retryable},
		{"deadlock", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, Retryable},
		{"cannot connect now", &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, Retryable},
		{"check violation", &pgconn.PgError{Code: pgerrcode.CheckViolation}, NonRetryable},
		{"bad conn", driver.ErrBadConn, Retryable},
		{"plain", errors.New("boom"), NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"unique", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, UniqueViolation},
		{"primary key", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, UniqueViolation},
		{"check", sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck}, NonRetryable},
		{"busy", sqlite3.Error{Code: sqlite3.ErrBusy}, Retryable},
		{"plain", errors.New("boom"), NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestDB_wrapError(t *testing.T) {
	db, _ := newMockDB(t, DriverPostgres)

	err := db.wrapError(&pgconn.PgError{Code: pgerrcode.ConnectionFailure}, ErrExecutingQuery)
	assert.ErrorIs(t, err, ErrDatabaseUnavailable)
	assert.NotErrorIs(t, err, ErrExecutingQuery)

	err = db.wrapError(errors.New("boom"), ErrExecutingQuery)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.Contains(t, err.Error(), "boom")
}
