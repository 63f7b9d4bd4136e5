package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingEncryptionKey indicates that APP_ENCRYPTION_KEY is not set.
	ErrMissingEncryptionKey = errors.New("encryption key is not configured")
	// ErrMalformedEncryptionKey indicates a key that is not 32 hex-encoded bytes.
	ErrMalformedEncryptionKey = errors.New("encryption key must be 64 hex characters")
	// ErrInvalidAdapterConfigs indicates invalid extraction adapter settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an unknown backend or a missing DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration: address is required")
)
