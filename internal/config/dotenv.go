// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"

	"github.com/joho/godotenv"
)

// dotEnvFile is the name of every layered environment file.
const dotEnvFile = ".env"

// dotEnvLayer is the parsed content of one readable .env file.
type dotEnvLayer struct {
	path string
	vars map[string]string
}

// dotEnvPaths returns the .env candidates in load order:
// <backend-dir>/.env, <repo-root>/.env and ./.env. The repository root is
// the parent of backendDir. Paths that resolve to an already listed file
// are dropped.
func dotEnvPaths(backendDir string) []string {
	candidates := []string{
		filepath.Join(backendDir, dotEnvFile),
		filepath.Join(filepath.Dir(filepath.Clean(backendDir)), dotEnvFile),
		dotEnvFile,
	}

	seen := make(map[string]struct{}, len(candidates))
	paths := make([]string, 0, len(candidates))
	for _, p := range candidates {
		key := p
		if abs, err := filepath.Abs(p); err == nil {
			key = abs
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		paths = append(paths, p)
	}

	return paths
}

// readDotEnvLayers reads every path with godotenv. A file that is missing or
// cannot be parsed contributes nothing; it never aborts loading. Empty values
// are dropped so they do not shadow later layers.
func readDotEnvLayers(paths []string) []dotEnvLayer {
	layers := make([]dotEnvLayer, 0, len(paths))
	for _, p := range paths {
		vars, err := godotenv.Read(p)
		if err != nil {
			continue
		}

		for k, v := range vars {
			if v == "" {
				delete(vars, k)
			}
		}
		layers = append(layers, dotEnvLayer{path: p, vars: vars})
	}

	return layers
}
