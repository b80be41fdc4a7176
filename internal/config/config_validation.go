// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. The database DSN is not required:
// without it the server still starts and GET /health reports the failure.
func (cfg *StructuredConfig) validate() error {
	if cfg.Runtime.Port < 1 || cfg.Runtime.Port > 65535 {
		return fmt.Errorf("%w: port %d is out of range", ErrInvalidServerConfigs, cfg.Runtime.Port)
	}

	if cfg.Server.BodyLimit <= 0 {
		return fmt.Errorf("%w: body limit must be positive", ErrInvalidServerConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is empty", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.Adapter.Origin)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: origin %q must be an absolute URL", ErrInvalidAdapterConfigs, cfg.Adapter.Origin)
	}

	return nil
}
