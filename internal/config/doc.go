// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Server configuration is assembled from ordered sources; for every field
// the first source with a non-zero value wins:
//  1. Command-line flags
//  2. Process environment
//  3. <backend-dir>/.env, <repo-root>/.env, ./.env (read with godotenv)
//  4. JSON config file
//  5. Built-in defaults
//
// A .env file that is missing or unreadable contributes nothing.
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the CLI client.
package config
