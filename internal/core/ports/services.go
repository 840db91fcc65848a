package ports

import (
	"context"
	"time"

	"github.com/ANAVHEOBA/trustwallet/internal/core/domain"

	"github.com/google/uuid"
)

// MnemonicDeriver generates and validates BIP-39 seed phrases and derives
// the deterministic wallet address for a phrase. Pure functions, no I/O.
type MnemonicDeriver interface {
	// Generate produces a random 12-word phrase and its derived address.
	Generate() (phrase string, address string, err error)
	// Validate checks word-list membership and checksum. Fails closed.
	Validate(phrase string) bool
	// AddressOf derives the lowercase wallet address for a phrase. The
	// same phrase always yields the same address.
	AddressOf(phrase string) (string, error)
}

// SeedCipher performs authenticated at-rest encryption of seed phrases.
// The encryption key is derived from the phrase itself, so possession of
// the phrase is both necessary and sufficient to open its own sealed
// form; the cipher protects against store-level exfiltration only.
type SeedCipher interface {
	// Seal encrypts the phrase under a key derived from it with a fresh
	// salt and IV.
	Seal(phrase string) (domain.EncryptedSeed, error)
	// Open decrypts a sealed seed using secret as the key-derivation
	// input. Rejects on auth-tag mismatch, never returning partial
	// plaintext.
	Open(seed domain.EncryptedSeed, secret string) (string, error)
}

// PinHasher hashes and verifies wallet PINs.
type PinHasher interface {
	Hash(pin string) (hash string, salt string, err error)
	Verify(pin string, hash string, salt string) bool
}

// ChallengeBuilder builds and checks word-recall verification
// challenges. Challenges are stateless and recomputed per call.
type ChallengeBuilder interface {
	Build(phrase string, sampleSize int) (*domain.VerificationChallenge, error)
	// Verify is all-or-nothing: true iff every selection matches the
	// phrase exactly at its index.
	Verify(phrase string, selections []domain.WordSelection) bool
}

// TokenService handles the opaque session token carrying
// {id, walletAddress?, role}. The core consumes the authenticated owner
// id; issuance happens only at the HTTP boundary.
type TokenService interface {
	Generate(userID uuid.UUID, walletAddress string, role string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed session token payload.
type TokenClaims struct {
	UserID        uuid.UUID
	WalletAddress string
	Role          string
}

// --- Service Ports (Business Logic) ---

// GeneratedWallet is the result of generating a fresh wallet; nothing is
// persisted until the phrase comes back through CreateWallet.
type GeneratedWallet struct {
	SeedPhrase string
	Address    string
	Message    string
}

// WalletService is the wallet lifecycle manager: creation, import,
// logout, reuse, and the recall-verification flow.
type WalletService interface {
	// GenerateNewWallet derives a fresh phrase and address without
	// persisting anything.
	GenerateNewWallet() (*GeneratedWallet, error)
	// CreateWallet validates the phrase, derives the address, and either
	// reassigns a logged-out wallet or persists a new record (seeding the
	// giveaway balances). Fails with InvalidSeedPhrase or AddressInUse.
	CreateWallet(ctx context.Context, userID uuid.UUID, phrase string, pin *string) (*domain.Wallet, error)
	// ImportWallet mirrors CreateWallet's reuse path but clears isDefault
	// on reassignment, and fails with WalletInUse on an active collision.
	ImportWallet(ctx context.Context, userID uuid.UUID, phrase string) (*domain.Wallet, error)
	// ListWallets returns the owner's active wallets, default first, then
	// most recent.
	ListWallets(ctx context.Context, userID uuid.UUID) ([]domain.Wallet, error)
	// LogoutWallet marks the wallet logged out and stamps the time. Only
	// the current owner may log a wallet out.
	LogoutWallet(ctx context.Context, userID uuid.UUID, address string) error
	// BuildChallenge builds a recall quiz for the phrase.
	BuildChallenge(phrase string) (*domain.VerificationChallenge, error)
	// VerifyChallenge checks the selections; on full success it marks the
	// wallet at the derived address verified when one exists.
	VerifyChallenge(ctx context.Context, phrase string, selections []domain.WordSelection) (bool, error)
}

// MarketService is the balance refresh subsystem: best-effort market
// data fetch plus idempotent application to stored ledgers. Fetch
// failures are absorbed as zeroed metrics and never fail wallet reads.
type MarketService interface {
	// FetchMetrics returns the metrics for one symbol, zeroed on any
	// failure.
	FetchMetrics(ctx context.Context, symbol string) domain.MarketMetrics
	// FetchAll fans out over every tracked symbol and always returns a
	// complete map.
	FetchAll(ctx context.Context) map[string]domain.MarketMetrics
	// SeedGiveaway creates the ledger for a new wallet with the fixed
	// giveaway allocation and runs one initial refresh.
	SeedGiveaway(ctx context.Context, userID uuid.UUID, address string) (*domain.CryptoWallet, error)
	// GetWalletBalances refreshes and returns one wallet's ledger.
	GetWalletBalances(ctx context.Context, address string) (*domain.CryptoWallet, error)
	// RefreshAllWallets fetches once and refreshes every stored ledger;
	// per-wallet failures are isolated.
	RefreshAllWallets(ctx context.Context) error
}

// MarketFeed is the external market-data source for a single
// chain-qualified pair address.
type MarketFeed interface {
	FetchPairMetrics(ctx context.Context, pairAddress string) (domain.MarketMetrics, error)
}
