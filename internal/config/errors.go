package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid listen settings
	// (for example, a port outside 1..65535 or a non-positive body limit).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, an origin that is not an absolute URL).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
