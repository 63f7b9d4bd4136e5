// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-emlak-keeper/internal/utils"
	"golang.org/x/crypto/hkdf"
)

const (
	keySize   = 32
	nonceSize = 12

	// tcHashInfo domain-separates the TC lookup key from the encryption key.
	tcHashInfo = "tc-lookup"
)

type fieldCipher struct {
	aead    cipher.AEAD
	hashKey []byte
}

// NewFieldCipher builds the process-wide cipher from a 64-hex-character key.
//
// hashSalt keys the TC lookup hash. When it is empty the hash key is derived
// from the encryption key with HKDF-SHA256, so a deployment only has to
// provision one secret.
func NewFieldCipher(hexKey, hashSalt string) (FieldCipher, error) {
	hexKey = strings.TrimSpace(hexKey)
	if hexKey == "" {
		return nil, ErrMissingEncryptionKey
	}

	key, err := hex.DecodeString(hexKey)
	if err != nil || len(key) != keySize {
		return nil, ErrMalformedEncryptionKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEncryptionKey, err)
	}
	aead, err := cipher.NewGCMWithNonceSize(block, nonceSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedEncryptionKey, err)
	}

	hashKey := []byte(hashSalt)
	if hashSalt == "" {
		hashKey = make([]byte, keySize)
		if _, err = io.ReadFull(hkdf.New(sha256.New, key, nil, []byte(tcHashInfo)), hashKey); err != nil {
			return nil, fmt.Errorf("derive tc hash key: %w", err)
		}
	}

	return &fieldCipher{aead: aead, hashKey: hashKey}, nil
}

// Encrypt seals plaintext with a fresh random nonce and returns
// "hex(nonce):hex(ciphertext)". Equal inputs produce different outputs.
func (c *fieldCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("%w: generate nonce: %w", ErrEncryption, err)
	}

	ciphertext := c.aead.Seal(nil, nonce, []byte(plaintext), nil)

	return hex.EncodeToString(nonce) + ":" + hex.EncodeToString(ciphertext), nil
}

// Decrypt reverses Encrypt. Malformed input, a wrong key and tampered
// ciphertext all yield [ErrDecryption].
func (c *fieldCipher) Decrypt(encrypted string) (string, error) {
	ivHex, ctHex, ok := strings.Cut(encrypted, ":")
	if !ok {
		return "", fmt.Errorf("%w: missing iv separator", ErrDecryption)
	}

	nonce, err := hex.DecodeString(ivHex)
	if err != nil || len(nonce) != nonceSize {
		return "", fmt.Errorf("%w: malformed iv", ErrDecryption)
	}
	ciphertext, err := hex.DecodeString(ctHex)
	if err != nil {
		return "", fmt.Errorf("%w: malformed ciphertext", ErrDecryption)
	}

	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryption, err)
	}

	return string(plaintext), nil
}

// HashTC returns the deterministic lookup hash of a TC number.
func (c *fieldCipher) HashTC(tc string) string {
	return utils.HashString(strings.TrimSpace(tc), c.hashKey)
}

// GenerateEncryptionKey returns a new random 32-byte key as 64 hex characters,
// suitable for APP_ENCRYPTION_KEY.
func GenerateEncryptionKey() (string, error) {
	key := make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	return hex.EncodeToString(key), nil
}
