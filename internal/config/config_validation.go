// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. A missing or
// malformed encryption key is fatal.
func (cfg *StructuredConfig) validate() error {
	if err := validateEncryptionKey(cfg.App.EncryptionKey); err != nil {
		return err
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}

	switch cfg.Storage.Backend {
	case BackendMemory:
	case BackendPostgres, BackendSQLite:
		if cfg.Storage.DB.DSN == "" {
			return fmt.Errorf("%w: %s backend requires a DSN", ErrInvalidStorageConfigs, cfg.Storage.Backend)
		}
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Adapter.ExtractionURL != "" && !strings.Contains(cfg.Adapter.ExtractionURL, "://") {
		return fmt.Errorf("%w: extraction url must include a scheme", ErrInvalidAdapterConfigs)
	}

	return nil
}

func validateEncryptionKey(key string) error {
	if key == "" {
		return ErrMissingEncryptionKey
	}
	decoded, err := hex.DecodeString(key)
	if err != nil || len(decoded) != 32 {
		return ErrMalformedEncryptionKey
	}
	return nil
}
