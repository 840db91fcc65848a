package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"io"

	"github.com/ANAVHEOBA/trustwallet/internal/core/domain"

	"golang.org/x/crypto/pbkdf2"
)

// KDF and AEAD parameters. 100k PBKDF2-SHA512 iterations for brute-force
// resistance; the IV is 16 bytes to match the stored record format.
const (
	kdfIterations = 100_000
	kdfKeyLen     = 32
	seedSaltLen   = 16
	seedIVLen     = 16
)

// ErrAuthenticationFailed is returned by Open on an AEAD tag mismatch:
// the ciphertext was tampered with, the record is corrupt, or the secret
// is not the phrase the record was sealed with.
var ErrAuthenticationFailed = errors.New("seed decryption failed: integrity tag mismatch")

// PBKDF2SeedCipher implements ports.SeedCipher using PBKDF2-SHA512 key
// derivation and AES-256-GCM. The key is derived from the phrase being
// sealed, so the phrase is its own credential; the cipher only obfuscates
// the phrase against storage compromise.
type PBKDF2SeedCipher struct{}

// NewPBKDF2SeedCipher creates a new PBKDF2SeedCipher.
func NewPBKDF2SeedCipher() *PBKDF2SeedCipher {
	return &PBKDF2SeedCipher{}
}

func deriveKey(secret string, salt []byte) []byte {
	return pbkdf2.Key([]byte(secret), salt, kdfIterations, kdfKeyLen, sha512.New)
}

// Seal encrypts the phrase under a key derived from it, with a fresh
// random salt and IV. The auth tag is appended to the ciphertext.
func (s *PBKDF2SeedCipher) Seal(phrase string) (domain.EncryptedSeed, error) {
	salt := make([]byte, seedSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return domain.EncryptedSeed{}, fmt.Errorf("generating salt: %w", err)
	}
	iv := make([]byte, seedIVLen)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return domain.EncryptedSeed{}, fmt.Errorf("generating iv: %w", err)
	}

	aead, err := newSeedAEAD(deriveKey(phrase, salt))
	if err != nil {
		return domain.EncryptedSeed{}, err
	}

	ciphertext := aead.Seal(nil, iv, []byte(phrase), nil)
	return domain.EncryptedSeed{
		Ciphertext: hex.EncodeToString(ciphertext),
		IV:         hex.EncodeToString(iv),
		Salt:       hex.EncodeToString(salt),
	}, nil
}

// Open decrypts a sealed seed using secret as the key-derivation input.
// Any tag mismatch yields ErrAuthenticationFailed; partially decrypted
// data is never returned.
func (s *PBKDF2SeedCipher) Open(seed domain.EncryptedSeed, secret string) (string, error) {
	ciphertext, err := hex.DecodeString(seed.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("decoding ciphertext: %w", err)
	}
	iv, err := hex.DecodeString(seed.IV)
	if err != nil {
		return "", fmt.Errorf("decoding iv: %w", err)
	}
	salt, err := hex.DecodeString(seed.Salt)
	if err != nil {
		return "", fmt.Errorf("decoding salt: %w", err)
	}
	if len(iv) != seedIVLen {
		return "", fmt.Errorf("iv must be %d bytes, got %d", seedIVLen, len(iv))
	}

	aead, err := newSeedAEAD(deriveKey(secret, salt))
	if err != nil {
		return "", err
	}

	plaintext, err := aead.Open(nil, iv, ciphertext, nil)
	if err != nil {
		return "", ErrAuthenticationFailed
	}
	return string(plaintext), nil
}

func newSeedAEAD(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	aead, err := cipher.NewGCMWithNonceSize(block, seedIVLen)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	return aead, nil
}
