package service

import (
	"encoding/hex"
	"testing"

	"github.com/ANAVHEOBA/trustwallet/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPBKDF2SeedCipher_RoundTrip(t *testing.T) {
	c := NewPBKDF2SeedCipher()

	sealed, err := c.Seal(testPhrase)
	require.NoError(t, err)

	assert.NotEmpty(t, sealed.Ciphertext)
	assert.Len(t, sealed.IV, seedIVLen*2, "iv is hex-encoded")
	assert.Len(t, sealed.Salt, seedSaltLen*2, "salt is hex-encoded")

	opened, err := c.Open(sealed, testPhrase)
	require.NoError(t, err)
	assert.Equal(t, testPhrase, opened)
}

func TestPBKDF2SeedCipher_FreshSaltAndIV(t *testing.T) {
	c := NewPBKDF2SeedCipher()

	s1, err := c.Seal(testPhrase)
	require.NoError(t, err)
	s2, err := c.Seal(testPhrase)
	require.NoError(t, err)

	assert.NotEqual(t, s1.Salt, s2.Salt)
	assert.NotEqual(t, s1.IV, s2.IV)
	assert.NotEqual(t, s1.Ciphertext, s2.Ciphertext)

	// Both still open with the same phrase.
	for _, s := range []domain.EncryptedSeed{s1, s2} {
		opened, err := c.Open(s, testPhrase)
		require.NoError(t, err)
		assert.Equal(t, testPhrase, opened)
	}
}

func TestPBKDF2SeedCipher_WrongSecret(t *testing.T) {
	c := NewPBKDF2SeedCipher()

	sealed, err := c.Seal(testPhrase)
	require.NoError(t, err)

	_, err = c.Open(sealed, "some other twelve word phrase entirely")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestPBKDF2SeedCipher_TamperedCiphertext(t *testing.T) {
	c := NewPBKDF2SeedCipher()

	sealed, err := c.Seal(testPhrase)
	require.NoError(t, err)

	raw, err := hex.DecodeString(sealed.Ciphertext)
	require.NoError(t, err)
	raw[0] ^= 0xff
	sealed.Ciphertext = hex.EncodeToString(raw)

	_, err = c.Open(sealed, testPhrase)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestPBKDF2SeedCipher_TamperedTag(t *testing.T) {
	c := NewPBKDF2SeedCipher()

	sealed, err := c.Seal(testPhrase)
	require.NoError(t, err)

	// The tag occupies the final 16 bytes of the ciphertext blob.
	raw, err := hex.DecodeString(sealed.Ciphertext)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0x01
	sealed.Ciphertext = hex.EncodeToString(raw)

	_, err = c.Open(sealed, testPhrase)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestPBKDF2SeedCipher_MalformedRecord(t *testing.T) {
	c := NewPBKDF2SeedCipher()

	tests := []struct {
		name string
		seed domain.EncryptedSeed
	}{
		{"bad ciphertext hex", domain.EncryptedSeed{Ciphertext: "zz", IV: hex.EncodeToString(make([]byte, 16)), Salt: hex.EncodeToString(make([]byte, 16))}},
		{"bad iv hex", domain.EncryptedSeed{Ciphertext: "abcd", IV: "not-hex", Salt: hex.EncodeToString(make([]byte, 16))}},
		{"short iv", domain.EncryptedSeed{Ciphertext: "abcd", IV: "abcd", Salt: hex.EncodeToString(make([]byte, 16))}},
		{"bad salt hex", domain.EncryptedSeed{Ciphertext: "abcd", IV: hex.EncodeToString(make([]byte, 16)), Salt: "xx!!"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Open(tt.seed, testPhrase)
			assert.Error(t, err)
			assert.NotErrorIs(t, err, ErrAuthenticationFailed, "malformed input is not an auth failure")
		})
	}
}

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := []byte("0123456789abcdef")

	k1 := deriveKey(testPhrase, salt)
	k2 := deriveKey(testPhrase, salt)
	assert.Equal(t, k1, k2)
	assert.Len(t, k1, kdfKeyLen)

	k3 := deriveKey(testPhrase, []byte("fedcba9876543210"))
	assert.NotEqual(t, k1, k3, "different salt must yield a different key")
}
