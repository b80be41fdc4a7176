// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from vars using the caarlos0/env library. Struct
// fields are mapped via their `env` and `envPrefix` tags. Keys absent from
// vars leave the field at its zero value so the next source can fill it.
//
// Returns a wrapped error if a value cannot be converted to the target type.
func parseEnv(cfg any, vars map[string]string) error {
	// a nil Environment makes the library fall back to os.Environ
	if vars == nil {
		vars = map[string]string{}
	}

	err := env.ParseWithOptions(cfg, env.Options{Environment: vars})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// environToMap converts KEY=value pairs into a map. Empty values are dropped
// so that a variable set to "" falls through to later sources.
func environToMap(environ []string) map[string]string {
	vars := env.ToMap(environ)
	for k, v := range vars {
		if v == "" {
			delete(vars, k)
		}
	}

	return vars
}
