package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid listener settings
	// (for example, a port outside 1..65535 or a negative timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidCORSConfigs indicates an incomplete cross-origin policy
	// (for example, no origins or a negative max age).
	ErrInvalidCORSConfigs = errors.New("invalid cors configuration")
)
