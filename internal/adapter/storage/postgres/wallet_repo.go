package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ANAVHEOBA/trustwallet/internal/core/domain"
	"github.com/ANAVHEOBA/trustwallet/internal/core/ports"
)

const pgUniqueViolation = "23505"

const walletColumns = `id, user_id, wallet_address, seed_ciphertext, seed_iv, seed_salt,
	name, is_default, is_verified, is_logged_out, last_logout,
	has_pin, pin_hash, pin_salt, has_biometrics, last_accessed,
	status, created_at, updated_at`

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWallet(row rowScanner) (*domain.Wallet, error) {
	w := &domain.Wallet{}
	err := row.Scan(
		&w.ID, &w.UserID, &w.Address,
		&w.Seed.Ciphertext, &w.Seed.IV, &w.Seed.Salt,
		&w.Name, &w.IsDefault, &w.IsVerified, &w.IsLoggedOut, &w.LastLogout,
		&w.Security.HasPin, &w.Security.PinHash, &w.Security.PinSalt,
		&w.Security.HasBiometrics, &w.Security.LastAccessed,
		&w.Status, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Create inserts a new wallet. The unique constraint on wallet_address
// decides the winner of concurrent creates from the same phrase.
func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets (` + walletColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.UserID, w.Address,
		w.Seed.Ciphertext, w.Seed.IV, w.Seed.Salt,
		w.Name, w.IsDefault, w.IsVerified, w.IsLoggedOut, w.LastLogout,
		w.Security.HasPin, w.Security.PinHash, w.Security.PinSalt,
		w.Security.HasBiometrics, w.Security.LastAccessed,
		w.Status, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ports.ErrDuplicateAddress
		}
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByAddress fetches a wallet by its lowercase address.
func (r *WalletRepo) GetByAddress(ctx context.Context, address string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE wallet_address = $1`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, address))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by address: %w", err)
	}
	return w, nil
}

// ListActiveByUser returns the owner's active wallets, default wallet
// first, then most recently created.
func (r *WalletRepo) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets
		WHERE user_id = $1 AND is_logged_out = false AND status = $2
		ORDER BY is_default DESC, created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID, domain.WalletStatusActive)
	if err != nil {
		return nil, fmt.Errorf("list wallets by user: %w", err)
	}
	defer rows.Close()

	var wallets []domain.Wallet
	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan wallet: %w", err)
		}
		wallets = append(wallets, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallets: %w", err)
	}
	return wallets, nil
}

// CountActiveByUser counts the owner's active, non-logged-out wallets.
func (r *WalletRepo) CountActiveByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM wallets
		WHERE user_id = $1 AND is_logged_out = false AND status = $2`

	var count int
	if err := r.pool.QueryRow(ctx, query, userID, domain.WalletStatusActive).Scan(&count); err != nil {
		return 0, fmt.Errorf("count wallets by user: %w", err)
	}
	return count, nil
}

// Update saves the full wallet record.
func (r *WalletRepo) Update(ctx context.Context, w *domain.Wallet) error {
	query := `UPDATE wallets SET
		user_id = $2, name = $3, is_default = $4, is_verified = $5,
		is_logged_out = $6, last_logout = $7,
		has_pin = $8, pin_hash = $9, pin_salt = $10, has_biometrics = $11,
		last_accessed = $12, status = $13, updated_at = $14
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		w.ID, w.UserID, w.Name, w.IsDefault, w.IsVerified,
		w.IsLoggedOut, w.LastLogout,
		w.Security.HasPin, w.Security.PinHash, w.Security.PinSalt,
		w.Security.HasBiometrics, w.Security.LastAccessed,
		w.Status, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update wallet: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update wallet: no row for id %s", w.ID)
	}
	return nil
}

// Reassign transfers a logged-out wallet to a new owner, conditional on
// the wallet still being logged out. A zero-row update means the wallet
// is absent or a concurrent reassign won.
func (r *WalletRepo) Reassign(ctx context.Context, address string, newOwner uuid.UUID, clearDefault bool, now time.Time) (*domain.Wallet, error) {
	query := `UPDATE wallets SET
		user_id = $2,
		is_logged_out = false,
		last_logout = NULL,
		is_default = CASE WHEN $3 THEN false ELSE is_default END,
		last_accessed = $4,
		updated_at = $4
		WHERE wallet_address = $1 AND is_logged_out = true
		RETURNING ` + walletColumns

	w, err := scanWallet(r.pool.QueryRow(ctx, query, address, newOwner, clearDefault, now))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("reassign wallet: %w", err)
	}
	return w, nil
}
