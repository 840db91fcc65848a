package service

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
)

// PBKDF2PinHasher implements ports.PinHasher with the same KDF the seed
// cipher uses, storing hash and salt as separate hex fields.
type PBKDF2PinHasher struct{}

// NewPBKDF2PinHasher creates a new PBKDF2PinHasher.
func NewPBKDF2PinHasher() *PBKDF2PinHasher {
	return &PBKDF2PinHasher{}
}

// Hash derives a hash of the PIN with a fresh random salt.
func (h *PBKDF2PinHasher) Hash(pin string) (string, string, error) {
	salt := make([]byte, seedSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", "", fmt.Errorf("generating pin salt: %w", err)
	}
	hash := deriveKey(pin, salt)
	return hex.EncodeToString(hash), hex.EncodeToString(salt), nil
}

// Verify re-derives the hash and compares in constant time. Malformed
// stored values simply fail verification.
func (h *PBKDF2PinHasher) Verify(pin string, hash string, salt string) bool {
	saltBytes, err := hex.DecodeString(salt)
	if err != nil {
		return false
	}
	hashBytes, err := hex.DecodeString(hash)
	if err != nil {
		return false
	}
	derived := deriveKey(pin, saltBytes)
	return subtle.ConstantTimeCompare(hashBytes, derived) == 1
}
