package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"dario.cat/mergo"
)

// Built-in defaults applied after every other source.
const (
	DefaultPort            = 3001
	DefaultBodyLimit int64 = 50 << 20
	DefaultTokenIssuer     = "sweet-shop"
	DefaultTokenDuration   = 24 * time.Hour
	DefaultVersion         = "dev"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 7),
	}
}

// build merges the collected configs in order. mergo only fills fields that
// are still zero, so the first source providing a value wins.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

func (b *configBuilder) withEnv(environ []string) *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg, environToMap(environ)); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

// withDotEnv adds one config per readable .env layer. The backend directory
// comes from the sources collected so far and defaults to the working
// directory.
func (b *configBuilder) withDotEnv() *configBuilder {
	backendDir := ""
	for _, cfg := range b.configs {
		if cfg.Runtime.BackendDir != "" {
			backendDir = cfg.Runtime.BackendDir
			break
		}
	}
	if backendDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			b.err = errors.Join(b.err, fmt.Errorf("error resolving working directory: %w", err))
			return b
		}
		backendDir = wd
	}

	for _, layer := range readDotEnvLayers(dotEnvPaths(backendDir)) {
		layerCfg := &StructuredConfig{}
		if err := parseEnv(layerCfg, layer.vars); err != nil {
			b.err = errors.Join(b.err, fmt.Errorf("%s: %w", layer.path, err))
			return b
		}
		b.configs = append(b.configs, layerCfg)
	}

	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		Runtime: Runtime{
			Port: DefaultPort,
		},
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			Version:       DefaultVersion,
		},
		Server: Server{
			BodyLimit:       DefaultBodyLimit,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    60 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
	})

	return b
}
