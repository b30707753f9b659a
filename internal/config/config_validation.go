// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Backend {
	case BackendFile:
		if cfg.Storage.Files.NotesDir == "" {
			return fmt.Errorf("%w: file backend requires a notes directory", ErrInvalidConfig)
		}
	case BackendSQLite, BackendPostgres:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: %s backend requires a DSN", ErrInvalidConfig, cfg.Storage.Backend)
		}
	default:
		return fmt.Errorf("%w: unknown storage backend %q", ErrInvalidConfig, cfg.Storage.Backend)
	}

	if cfg.App.MaxNoteSize <= 0 {
		return fmt.Errorf("%w: max note size must be positive", ErrInvalidConfig)
	}
	if cfg.Expiry.CheckPeriod <= 0 {
		return fmt.Errorf("%w: expiry check period must be positive", ErrInvalidConfig)
	}
	if cfg.RateLimit.Window <= 0 || cfg.RateLimit.MaxRequests <= 0 || cfg.RateLimit.PasswordMaxRequests <= 0 {
		return fmt.Errorf("%w: rate limit window and quotas must be positive", ErrInvalidConfig)
	}

	return nil
}
