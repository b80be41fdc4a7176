// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"os"
	"strconv"
	"time"
)

// Runtime values that control listen gating.
const (
	// NodeEnvTest marks a process started by a test harness.
	NodeEnvTest = "test"
)

// StructuredConfig is the top-level configuration container for the
// sweet shop server. It aggregates all sub-configurations and is populated
// by merging values from command-line flags, the process environment, the
// layered .env files and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Runtime holds the unprefixed process-level variables shared with the
	// hosting platform (PORT, NODE_ENV, NETLIFY).
	Runtime Runtime

	// App holds token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen host, request body limit and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Runtime holds process-level settings that are read without a prefix
// because hosting platforms and tooling set them directly.
type Runtime struct {
	// Port is the TCP port the HTTP server listens on.
	// Env: PORT
	Port int `env:"PORT"`

	// NodeEnv names the execution environment. "test" disables listening.
	// Env: NODE_ENV
	NodeEnv string `env:"NODE_ENV"`

	// Netlify is set by the serverless host. Any non-empty value disables
	// listening.
	// Env: NETLIFY
	Netlify string `env:"NETLIFY"`

	// BackendDir is the directory whose .env file is loaded first. Its
	// parent is treated as the repository root.
	// Env: BACKEND_DIR
	BackendDir string `env:"BACKEND_DIR"`
}

// ListenEnabled reports whether the process should bind a listening socket.
// Under a test harness or the serverless host the server is built but only
// handed over for in-process invocation.
func (r Runtime) ListenEnabled() bool {
	return r.NodeEnv != NodeEnvTest && r.Netlify == ""
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and limit settings for the inbound HTTP layer.
type Server struct {
	// Host is the interface the HTTP server binds to. Empty means all.
	// Env: SERVER_HOST
	Host string `env:"HOST"`

	// BodyLimit is the maximum accepted request body size in bytes for both
	// JSON and URL-encoded payloads.
	// Env: SERVER_BODY_LIMIT
	BodyLimit int64 `env:"BODY_LIMIT"`

	// ReadTimeout bounds reading a whole request including its body.
	// Env: SERVER_READ_TIMEOUT
	ReadTimeout time.Duration `env:"READ_TIMEOUT"`

	// WriteTimeout bounds writing a response.
	// Env: SERVER_WRITE_TIMEOUT
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver and the database. A "postgres://" or
	// "postgresql://" DSN uses pgx; a "sqlite://" or "file:" DSN uses SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// SkipMigrations disables applying embedded migrations on start.
	// Env: STORAGE_DB_SKIP_MIGRATIONS
	SkipMigrations bool `env:"SKIP_MIGRATIONS"`
}

// ListenAddress returns the host:port the HTTP server binds to.
func (cfg *StructuredConfig) ListenAddress() string {
	return net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Runtime.Port))
}

// GetStructuredConfig loads, merges, and validates the server configuration.
// For every field the first source that provides a non-zero value wins:
//  1. Command-line flags
//  2. Process environment
//  3. <backend-dir>/.env
//  4. <repo-root>/.env
//  5. ./.env
//  6. JSON file (path resolved from the sources above)
//  7. Built-in defaults
//
// Missing or unreadable .env files are skipped.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:], os.Environ())
}

func loadStructuredConfig(args, environ []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv(environ).
		withDotEnv().
		withJSON().
		withDefaults().
		build()
}
