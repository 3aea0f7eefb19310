// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. It runs after
// defaults are applied.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: token sign key and issuer are required", ErrInvalidAppConfigs)
	}

	if cfg.App.UserTokenTTL <= 0 || cfg.App.AdminTokenTTL <= 0 {
		return fmt.Errorf("%w: token TTLs must be positive", ErrInvalidAppConfigs)
	}

	if cfg.App.BcryptCost < bcrypt.MinCost || cfg.App.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost must be between %d and %d", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	if cfg.Server.RateLimit < 0 {
		return fmt.Errorf("%w: rate limit must not be negative", ErrInvalidServerConfigs)
	}

	if cfg.Adapter.Geocoder.BaseURL == "" {
		return fmt.Errorf("%w: geocoder base URL is required", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.AuditBatchSize <= 0 || cfg.Workers.AuditMaxAttempts <= 0 {
		return fmt.Errorf("%w: audit batch size and max attempts must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}
