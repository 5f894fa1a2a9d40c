package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, a port outside the valid TCP range).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
