package ports

import (
	"context"
	"errors"
	"time"

	"github.com/ANAVHEOBA/trustwallet/internal/core/domain"

	"github.com/google/uuid"
)

// ErrDuplicateAddress is returned by WalletRepository.Create when the
// store's uniqueness constraint on wallet_address rejects the insert.
// It is the linearization point for concurrent creates of the same
// derived address.
var ErrDuplicateAddress = errors.New("wallet address already exists")

// WalletRepository defines persistence operations for custodied wallets.
// All address arguments must be pre-normalized to lowercase.
type WalletRepository interface {
	// Create inserts a new wallet. Returns ErrDuplicateAddress when the
	// address is already present.
	Create(ctx context.Context, w *domain.Wallet) error
	// GetByAddress fetches a wallet by address. Returns (nil, nil) when
	// absent.
	GetByAddress(ctx context.Context, address string) (*domain.Wallet, error)
	// ListActiveByUser returns the owner's active wallets, default wallet
	// first, then most recently created. Logged-out wallets are excluded.
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]domain.Wallet, error)
	// CountActiveByUser counts the owner's active, non-logged-out wallets.
	CountActiveByUser(ctx context.Context, userID uuid.UUID) (int, error)
	// Update saves the full wallet record.
	Update(ctx context.Context, w *domain.Wallet) error
	// Reassign transfers a logged-out wallet to a new owner and clears the
	// logout markers, conditional on the wallet still being logged out.
	// Returns (nil, nil) when no logged-out wallet matched (absent, or the
	// race was lost to a concurrent reassign). clearDefault additionally
	// forces isDefault to false (import path).
	Reassign(ctx context.Context, address string, newOwner uuid.UUID, clearDefault bool, now time.Time) (*domain.Wallet, error)
}

// BalanceRepository defines persistence for per-wallet balance ledgers.
// Records follow single-document save semantics: the balance list is
// written as a whole, so cross-wallet refresh failures stay isolated.
type BalanceRepository interface {
	Create(ctx context.Context, w *domain.CryptoWallet) error
	// GetByAddress fetches a ledger by wallet address. Returns (nil, nil)
	// when absent.
	GetByAddress(ctx context.Context, address string) (*domain.CryptoWallet, error)
	// Save overwrites the balance list and bumps updated_at.
	Save(ctx context.Context, w *domain.CryptoWallet) error
	// ListAll returns every stored ledger.
	ListAll(ctx context.Context) ([]domain.CryptoWallet, error)
}

// MetricsCache is a short-TTL cache for per-symbol market metrics,
// best-effort on both reads and writes.
type MetricsCache interface {
	// Get returns the cached metrics for a symbol, or nil on miss.
	Get(ctx context.Context, symbol string) (*domain.MarketMetrics, error)
	Set(ctx context.Context, symbol string, m domain.MarketMetrics, ttl time.Duration) error
}
