package crypto

import "errors"

var (
	// ErrMissingEncryptionKey is returned at startup when no key is configured.
	ErrMissingEncryptionKey = errors.New("encryption key is not configured")
	// ErrMalformedEncryptionKey is returned when the key is not 64 hex characters.
	ErrMalformedEncryptionKey = errors.New("encryption key must be 64 hex characters (32 bytes)")
	// ErrDecryption covers malformed input, a wrong key and failed authentication.
	ErrDecryption = errors.New("decryption failed")
	ErrEncryption = errors.New("encryption failed")
)
