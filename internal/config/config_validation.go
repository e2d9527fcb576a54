// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// [ErrInvalidStorageConfigs], [ErrInvalidAppConfigs] or
// [ErrInvalidLoggerConfigs] otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case DriverSQLite, DriverPostgres, DriverMySQL:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost %d is out of [%d, %d]",
			ErrInvalidAppConfigs, cfg.App.PasswordHashCost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.App.SearchMinLength < 1 {
		return fmt.Errorf("%w: search min length must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Logger.File == "" {
		return fmt.Errorf("%w: empty log file", ErrInvalidLoggerConfigs)
	}

	if _, err := zerolog.ParseLevel(cfg.Logger.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLoggerConfigs, err)
	}

	return nil
}
