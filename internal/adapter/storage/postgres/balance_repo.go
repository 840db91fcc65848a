package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ANAVHEOBA/trustwallet/internal/core/domain"
)

// BalanceRepo implements ports.BalanceRepository. The balance list is
// stored as a single JSONB column, so each ledger is written as a whole
// and refresh failures never leave a wallet half-updated.
type BalanceRepo struct {
	pool Pool
}

// NewBalanceRepo creates a new BalanceRepo.
func NewBalanceRepo(pool Pool) *BalanceRepo {
	return &BalanceRepo{pool: pool}
}

func scanCryptoWallet(row rowScanner) (*domain.CryptoWallet, error) {
	w := &domain.CryptoWallet{}
	var balances []byte
	err := row.Scan(&w.ID, &w.UserID, &w.Address, &balances, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(balances, &w.Balances); err != nil {
		return nil, fmt.Errorf("unmarshal balances: %w", err)
	}
	return w, nil
}

// Create inserts a new balance ledger.
func (r *BalanceRepo) Create(ctx context.Context, w *domain.CryptoWallet) error {
	balances, err := json.Marshal(w.Balances)
	if err != nil {
		return fmt.Errorf("marshal balances: %w", err)
	}

	query := `INSERT INTO crypto_wallets (id, user_id, wallet_address, balances, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	if _, err := r.pool.Exec(ctx, query, w.ID, w.UserID, w.Address, balances, w.CreatedAt, w.UpdatedAt); err != nil {
		return fmt.Errorf("insert crypto wallet: %w", err)
	}
	return nil
}

// GetByAddress fetches a ledger by wallet address.
func (r *BalanceRepo) GetByAddress(ctx context.Context, address string) (*domain.CryptoWallet, error) {
	query := `SELECT id, user_id, wallet_address, balances, created_at, updated_at
		FROM crypto_wallets WHERE wallet_address = $1`

	w, err := scanCryptoWallet(r.pool.QueryRow(ctx, query, address))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get crypto wallet by address: %w", err)
	}
	return w, nil
}

// Save overwrites the balance list and bumps updated_at.
func (r *BalanceRepo) Save(ctx context.Context, w *domain.CryptoWallet) error {
	balances, err := json.Marshal(w.Balances)
	if err != nil {
		return fmt.Errorf("marshal balances: %w", err)
	}

	query := `UPDATE crypto_wallets SET balances = $2, updated_at = $3 WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, w.ID, balances, w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update crypto wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update crypto wallet: no row for id %s", w.ID)
	}
	return nil
}

// ListAll returns every stored ledger.
func (r *BalanceRepo) ListAll(ctx context.Context) ([]domain.CryptoWallet, error) {
	query := `SELECT id, user_id, wallet_address, balances, created_at, updated_at
		FROM crypto_wallets ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list crypto wallets: %w", err)
	}
	defer rows.Close()

	var wallets []domain.CryptoWallet
	for rows.Next() {
		w, err := scanCryptoWallet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan crypto wallet: %w", err)
		}
		wallets = append(wallets, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate crypto wallets: %w", err)
	}
	return wallets, nil
}
