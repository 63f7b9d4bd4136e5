package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func newTestCipher(t *testing.T) FieldCipher {
	t.Helper()
	c, err := NewFieldCipher(testKey, "")
	require.NoError(t, err)
	return c
}

func TestNewFieldCipher_KeyValidation(t *testing.T) {
	_, err := NewFieldCipher("", "")
	assert.ErrorIs(t, err, ErrMissingEncryptionKey)

	_, err = NewFieldCipher("   ", "")
	assert.ErrorIs(t, err, ErrMissingEncryptionKey)

	_, err = NewFieldCipher("not-hex", "")
	assert.ErrorIs(t, err, ErrMalformedEncryptionKey)

	// 16 байт: слишком короткий ключ для AES-256
	_, err = NewFieldCipher(testKey[:32], "")
	assert.ErrorIs(t, err, ErrMalformedEncryptionKey)
}

func TestEncrypt_FormatAndNonDeterminism(t *testing.T) {
	c := newTestCipher(t)

	for _, plain := range []string{"12345678901", "TR330006100519786457841326", "", "İğüşöç"} {
		first, err := c.Encrypt(plain)
		require.NoError(t, err)
		second, err := c.Encrypt(plain)
		require.NoError(t, err)

		assert.NotEqual(t, first, second, "random IV must change the ciphertext")

		iv, _, ok := strings.Cut(first, ":")
		require.True(t, ok)
		assert.Len(t, iv, 24, "96-bit IV is 24 hex chars")

		got, err := c.Decrypt(first)
		require.NoError(t, err)
		assert.Equal(t, plain, got)

		got, err = c.Decrypt(second)
		require.NoError(t, err)
		assert.Equal(t, plain, got)
	}
}

func TestDecrypt_Malformed(t *testing.T) {
	c := newTestCipher(t)

	for _, in := range []string{"", "nocolon", "zz:00", "00:zz", "0011:aabb"} {
		_, err := c.Decrypt(in)
		assert.ErrorIs(t, err, ErrDecryption, "input %q", in)
	}
}

func TestDecrypt_TamperDetected(t *testing.T) {
	c := newTestCipher(t)
	enc, err := c.Encrypt("12345678901")
	require.NoError(t, err)

	// Меняем последний символ шифртекста, тег GCM не должен сойтись
	last := enc[len(enc)-1]
	flipped := byte('0')
	if last == '0' {
		flipped = '1'
	}
	tampered := enc[:len(enc)-1] + string(flipped)

	_, err = c.Decrypt(tampered)
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestDecrypt_WrongKey(t *testing.T) {
	c := newTestCipher(t)
	enc, err := c.Encrypt("12345678901")
	require.NoError(t, err)

	otherKey, err := GenerateEncryptionKey()
	require.NoError(t, err)
	other, err := NewFieldCipher(otherKey, "")
	require.NoError(t, err)

	_, err = other.Decrypt(enc)
	assert.ErrorIs(t, err, ErrDecryption)
}

func TestHashTC_Deterministic(t *testing.T) {
	c := newTestCipher(t)

	assert.Equal(t, c.HashTC("12345678901"), c.HashTC("12345678901"))
	assert.NotEqual(t, c.HashTC("12345678901"), c.HashTC("12345678902"))
	assert.Len(t, c.HashTC("12345678901"), 64)
}

func TestHashTC_SaltOverridesDerivedKey(t *testing.T) {
	derived := newTestCipher(t)
	salted, err := NewFieldCipher(testKey, "pepper")
	require.NoError(t, err)

	assert.NotEqual(t, derived.HashTC("12345678901"), salted.HashTC("12345678901"))

	again, err := NewFieldCipher(testKey, "")
	require.NoError(t, err)
	assert.Equal(t, derived.HashTC("12345678901"), again.HashTC("12345678901"),
		"derived hash key must be stable for the same encryption key")
}

func TestGenerateEncryptionKey(t *testing.T) {
	k1, err := GenerateEncryptionKey()
	require.NoError(t, err)
	k2, err := GenerateEncryptionKey()
	require.NoError(t, err)

	assert.Len(t, k1, 64)
	assert.NotEqual(t, k1, k2)

	_, err = NewFieldCipher(k1, "")
	assert.NoError(t, err)
}
