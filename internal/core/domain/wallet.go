package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// WalletStatus is the lifecycle status of a wallet record.
type WalletStatus string

const (
	WalletStatusActive   WalletStatus = "active"
	WalletStatusDisabled WalletStatus = "disabled"
)

// DefaultWalletName is assigned when no display name is provided.
const DefaultWalletName = "Wallet 1"

// EncryptedSeed is the only durable representation of a seed phrase:
// AES-256-GCM ciphertext with the auth tag appended, plus the random IV
// and the KDF salt, all hex-encoded. Decryptable only with a key derived
// from the original phrase.
type EncryptedSeed struct {
	Ciphertext string `json:"-"`
	IV         string `json:"-"`
	Salt       string `json:"-"`
}

// WalletSecurity holds per-wallet security settings. PinHash/PinSalt
// never leave the service layer.
type WalletSecurity struct {
	HasPin        bool      `json:"has_pin"`
	PinHash       *string   `json:"-"`
	PinSalt       *string   `json:"-"`
	HasBiometrics bool      `json:"has_biometrics"`
	LastAccessed  time.Time `json:"last_accessed"`
}

// Wallet is a custodied wallet record. The address is unique across the
// system and always stored lowercase. A logged-out wallet stays in
// storage and is eligible for ownership reassignment via import or
// re-creation from the same phrase.
type Wallet struct {
	ID          uuid.UUID      `json:"id"`
	UserID      uuid.UUID      `json:"user_id"`
	Address     string         `json:"wallet_address"`
	Seed        EncryptedSeed  `json:"-"`
	Name        string         `json:"name"`
	IsDefault   bool           `json:"is_default"`
	IsVerified  bool           `json:"is_verified"`
	IsLoggedOut bool           `json:"is_logged_out"`
	LastLogout  *time.Time     `json:"last_logout,omitempty"`
	Security    WalletSecurity `json:"security"`
	Status      WalletStatus   `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// IsActive reports whether the wallet is in the active lifecycle status.
func (w *Wallet) IsActive() bool {
	return w.Status == WalletStatusActive
}

// NormalizeAddress canonicalizes a wallet address for storage and
// comparison. Addresses are case-insensitive identifiers.
func NormalizeAddress(addr string) string {
	return strings.ToLower(strings.TrimSpace(addr))
}
