// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. CORS values are only range-checked here; the policy
// itself is validated when it is built (see cors.NewPolicy).
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d is out of range 1..65535", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	if cfg.Server.ShutdownTimeout < 0 || cfg.Server.ReadHeaderTimeout < 0 {
		return fmt.Errorf("%w: timeouts must not be negative", ErrInvalidServerConfigs)
	}

	if len(cfg.CORS.Origins) == 0 || len(cfg.CORS.Methods) == 0 {
		return fmt.Errorf("%w: origins and methods are required", ErrInvalidCORSConfigs)
	}

	if cfg.CORS.MaxAge < 0 {
		return fmt.Errorf("%w: max age %d is negative", ErrInvalidCORSConfigs, cfg.CORS.MaxAge)
	}

	return nil
}
