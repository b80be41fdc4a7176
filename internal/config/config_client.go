package config

import (
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// DefaultClientOrigin is the server the CLI talks to when the resolved API
// base URL is empty (same origin).
const DefaultClientOrigin = "http://localhost:3001"

// ClientAPI holds the typed signals the API base URL is resolved from.
// Values come from link-time build variables first and the process
// environment second.
type ClientAPI struct {
	// PublicAPIURL is the public API URL build variable.
	PublicAPIURL string `env:"VITE_PUBLIC_API_URL"`

	// APIURL is the generic API URL build variable.
	APIURL string `env:"VITE_API_URL"`

	// Production reports a production build.
	Production bool `env:"PROD"`

	// Vars is the full, untyped environment. Keys outside the typed schema
	// are looked up here.
	Vars map[string]string `env:"-"`
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// Origin is the server origin used for relative API URLs.
	// Env: SWEETSHOP_ORIGIN
	Origin string `env:"ORIGIN"`
}

// ClientConfig is the top-level CLI client configuration.
type ClientConfig struct {
	API     ClientAPI
	Adapter ClientAdapter `envPrefix:"SWEETSHOP_"`
}

// GetClientConfig builds and validates the client configuration. build holds
// the values injected at link time; they take precedence over the process
// environment.
func GetClientConfig(build ClientAPI) (*ClientConfig, error) {
	return loadClientConfig(build, os.Environ())
}

func loadClientConfig(build ClientAPI, environ []string) (*ClientConfig, error) {
	vars := environToMap(environ)

	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg, vars); err != nil {
		return nil, fmt.Errorf("error get client env config: %w", err)
	}

	cfg := &ClientConfig{API: build}
	defaults := &ClientConfig{Adapter: ClientAdapter{Origin: DefaultClientOrigin}}
	for _, src := range []*ClientConfig{envCfg, defaults} {
		if err := mergo.Merge(cfg, src); err != nil {
			return nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}
	cfg.API.Vars = env.ToMap(environ)

	return cfg, cfg.validate()
}
