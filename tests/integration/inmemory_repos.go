package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/ANAVHEOBA/trustwallet/internal/core/domain"
	"github.com/ANAVHEOBA/trustwallet/internal/core/ports"

	"github.com/google/uuid"
)

// --- In-Memory Wallet Repo ---

// inMemoryWalletRepo mirrors the postgres repo's semantics: the address
// map plays the role of the unique constraint, and Reassign is
// conditional on the logged-out flag under the same lock, so concurrent
// claims of one address resolve to exactly one winner.
type inMemoryWalletRepo struct {
	mu      sync.RWMutex
	wallets map[string]*domain.Wallet // keyed by lowercase address
}

func newInMemoryWalletRepo() *inMemoryWalletRepo {
	return &inMemoryWalletRepo{wallets: make(map[string]*domain.Wallet)}
}

func (r *inMemoryWalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.wallets[w.Address]; ok {
		return ports.ErrDuplicateAddress
	}
	cp := *w
	r.wallets[w.Address] = &cp
	return nil
}

func (r *inMemoryWalletRepo) GetByAddress(ctx context.Context, address string) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.wallets[address]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *inMemoryWalletRepo) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Wallet
	for _, w := range r.wallets {
		if w.UserID == userID && !w.IsLoggedOut && w.Status == domain.WalletStatusActive {
			result = append(result, *w)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].IsDefault != result[j].IsDefault {
			return result[i].IsDefault
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *inMemoryWalletRepo) CountActiveByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, w := range r.wallets {
		if w.UserID == userID && !w.IsLoggedOut && w.Status == domain.WalletStatusActive {
			count++
		}
	}
	return count, nil
}

func (r *inMemoryWalletRepo) Update(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.wallets[w.Address]; !ok {
		return fmt.Errorf("wallet not found")
	}
	cp := *w
	r.wallets[w.Address] = &cp
	return nil
}

func (r *inMemoryWalletRepo) Reassign(ctx context.Context, address string, newOwner uuid.UUID, clearDefault bool, now time.Time) (*domain.Wallet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.wallets[address]
	if !ok || !w.IsLoggedOut {
		return nil, nil
	}
	w.UserID = newOwner
	w.IsLoggedOut = false
	w.LastLogout = nil
	if clearDefault {
		w.IsDefault = false
	}
	w.Security.LastAccessed = now
	w.UpdatedAt = now
	cp := *w
	return &cp, nil
}

// --- In-Memory Balance Repo ---

type inMemoryBalanceRepo struct {
	mu      sync.RWMutex
	ledgers map[string]*domain.CryptoWallet // keyed by lowercase address
}

func newInMemoryBalanceRepo() *inMemoryBalanceRepo {
	return &inMemoryBalanceRepo{ledgers: make(map[string]*domain.CryptoWallet)}
}

func copyLedger(w *domain.CryptoWallet) *domain.CryptoWallet {
	cp := *w
	cp.Balances = append([]domain.CryptoBalance(nil), w.Balances...)
	return &cp
}

func (r *inMemoryBalanceRepo) Create(ctx context.Context, w *domain.CryptoWallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ledgers[w.Address]; ok {
		return fmt.Errorf("ledger already exists")
	}
	r.ledgers[w.Address] = copyLedger(w)
	return nil
}

func (r *inMemoryBalanceRepo) GetByAddress(ctx context.Context, address string) (*domain.CryptoWallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.ledgers[address]
	if !ok {
		return nil, nil
	}
	return copyLedger(w), nil
}

func (r *inMemoryBalanceRepo) Save(ctx context.Context, w *domain.CryptoWallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ledgers[w.Address]; !ok {
		return fmt.Errorf("ledger not found")
	}
	r.ledgers[w.Address] = copyLedger(w)
	return nil
}

func (r *inMemoryBalanceRepo) ListAll(ctx context.Context) ([]domain.CryptoWallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.CryptoWallet, 0, len(r.ledgers))
	for _, w := range r.ledgers {
		result = append(result, *copyLedger(w))
	}
	return result, nil
}
