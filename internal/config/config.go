// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Storage backends accepted by Storage.Backend.
const (
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMemory   = "memory"
)

// Default limits and timeouts applied when a source leaves them unset.
const (
	DefaultImportMaxBytes   int64 = 10 << 20
	DefaultExtractMaxBytes  int64 = 100 << 20
	DefaultRequestTimeout         = 30 * time.Second
	DefaultShutdownTimeout        = 10 * time.Second
	DefaultWarningTTL             = 24 * time.Hour
	DefaultTokenIssuer            = "go-emlak-keeper"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from a .env file, environment variables, command-line
// flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: the field encryption key, token
	// parameters, upload limits and the application version.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the persistence backends.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter configures the remote document extraction endpoint.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Logging configures log level and optional file output.
	Logging Logging `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// EncryptionKey is the 64-hex-character AES-256 key used for TC and IBAN
	// fields. Required; generate one with `emlakctl keygen`.
	// Env: APP_ENCRYPTION_KEY
	EncryptionKey string `env:"ENCRYPTION_KEY"`

	// TCHashSalt keys the TC lookup hash. When empty the key is derived from
	// EncryptionKey.
	// Env: APP_TC_HASH_SALT
	TCHashSalt string `env:"TC_HASH_SALT"`

	// StorePlaintextDetails controls whether contract details carry plaintext
	// TC/IBAN copies for document generation. Defaults to true.
	// Env: APP_STORE_PLAINTEXT_DETAILS
	StorePlaintextDetails *bool `env:"STORE_PLAINTEXT_DETAILS"`

	// TokenSignKey is the secret key used to verify JWT bearer tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of tokens minted by `emlakctl token`.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// ImportMaxBytes limits contract import uploads.
	// Env: APP_IMPORT_MAX_BYTES
	ImportMaxBytes int64 `env:"IMPORT_MAX_BYTES"`

	// ExtractMaxBytes limits standalone extraction uploads.
	// Env: APP_EXTRACT_MAX_BYTES
	ExtractMaxBytes int64 `env:"EXTRACT_MAX_BYTES"`

	// Version is exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// PlaintextDetailsEnabled resolves StorePlaintextDetails with its default.
func (a App) PlaintextDetailsEnabled() bool {
	return a.StorePlaintextDetails == nil || *a.StorePlaintextDetails
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// Backend is one of postgres, sqlite or memory. When empty it is inferred
	// from the DSN.
	// Env: STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	DB    DB    `envPrefix:"DB_"`
	Files Files `envPrefix:"FILES_"`
	Redis Redis `envPrefix:"REDIS_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is a PostgreSQL URL or a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Migrate runs embedded migrations on startup.
	// Env: STORAGE_DB_MIGRATE
	Migrate bool `env:"MIGRATE"`
}

// Files holds file-system settings for stored contract documents.
type Files struct {
	// DocumentsDir is the root directory for attached contract PDFs.
	// Env: STORAGE_FILES_DOCUMENTS_DIR
	DocumentsDir string `env:"DOCUMENTS_DIR"`
}

// Redis configures the conflict-warning tracker. When Address is empty an
// in-process tracker is used.
type Redis struct {
	Address    string        `env:"ADDRESS"`
	Password   string        `env:"PASSWORD"`
	DB         int           `env:"DB"`
	WarningTTL time.Duration `env:"WARNING_TTL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter configures the remote document extraction endpoint. When
// ExtractionURL is empty documents are extracted in-process.
type Adapter struct {
	// Env: ADAPTER_EXTRACTION_URL
	ExtractionURL string `env:"EXTRACTION_URL"`
	// Env: ADAPTER_EXTRACTION_TOKEN
	ExtractionToken string `env:"EXTRACTION_TOKEN"`
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Logging configures the logger.
type Logging struct {
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
	// File enables rotated file output in addition to stdout.
	// Env: LOG_FILE
	File string `env:"FILE"`
	// Env: LOG_MAX_SIZE_MB
	MaxSizeMB int `env:"MAX_SIZE_MB"`
	// Env: LOG_MAX_BACKUPS
	MaxBackups int `env:"MAX_BACKUPS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file and environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(osArgs()).
		withJSON().
		build()
}

// GetToolConfig loads the .env file, environment variables and an optional
// JSON file for the operator CLI. Flags are left to the CLI itself and server
// settings are not validated.
func GetToolConfig(jsonPath string) (*StructuredConfig, error) {
	b := newConfigBuilder().withEnv()
	if jsonPath != "" {
		b.configs = append(b.configs, &StructuredConfig{JSONFilePath: jsonPath})
	}

	cfg, err := b.withJSON().merge()
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return cfg, nil
}
