package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ANAVHEOBA/trustwallet/internal/core/domain"
	"github.com/ANAVHEOBA/trustwallet/internal/core/ports"
	"github.com/ANAVHEOBA/trustwallet/pkg/apperror"
)

// WalletServiceImpl implements ports.WalletService.
type WalletServiceImpl struct {
	walletRepo ports.WalletRepository
	deriver    ports.MnemonicDeriver
	cipher     ports.SeedCipher
	pins       ports.PinHasher
	challenges ports.ChallengeBuilder
	market     ports.MarketService
	log        zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(
	walletRepo ports.WalletRepository,
	deriver ports.MnemonicDeriver,
	cipher ports.SeedCipher,
	pins ports.PinHasher,
	challenges ports.ChallengeBuilder,
	market ports.MarketService,
	log zerolog.Logger,
) *WalletServiceImpl {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		deriver:    deriver,
		cipher:     cipher,
		pins:       pins,
		challenges: challenges,
		market:     market,
		log:        log,
	}
}

// GenerateNewWallet derives a fresh phrase and address. Nothing is
// persisted; the phrase must come back through CreateWallet.
func (s *WalletServiceImpl) GenerateNewWallet() (*ports.GeneratedWallet, error) {
	phrase, address, err := s.deriver.Generate()
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate mnemonic: %w", err))
	}
	return &ports.GeneratedWallet{
		SeedPhrase: phrase,
		Address:    address,
		Message:    RecoveryMessage,
	}, nil
}

// CreateWallet persists a wallet for the given phrase. A logged-out
// wallet at the same address is reassigned to the new owner instead of
// erroring; an active one is rejected. New wallets get the giveaway
// balance ledger.
func (s *WalletServiceImpl) CreateWallet(ctx context.Context, userID uuid.UUID, phrase string, pin *string) (*domain.Wallet, error) {
	phrase = strings.TrimSpace(phrase)
	if !s.deriver.Validate(phrase) {
		return nil, apperror.ErrInvalidSeedPhrase()
	}

	address, err := s.deriver.AddressOf(phrase)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("derive address: %w", err))
	}
	address = domain.NormalizeAddress(address)

	existing, err := s.walletRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if existing != nil {
		if !existing.IsLoggedOut {
			return nil, apperror.ErrAddressInUse()
		}
		// A reclaimed wallet keeps its default flag only when the new
		// owner holds no other wallets; otherwise the account would end
		// up with two defaults.
		clearDefault := false
		if existing.IsDefault {
			activeCount, err := s.walletRepo.CountActiveByUser(ctx, userID)
			if err != nil {
				return nil, apperror.ErrDatabaseError(err)
			}
			clearDefault = activeCount > 0
		}
		return s.reassignWallet(ctx, existing, userID, address, phrase, pin, clearDefault, apperror.ErrAddressInUse())
	}

	return s.createWallet(ctx, userID, address, phrase, pin)
}

// ImportWallet mirrors CreateWallet's reuse path but an active
// collision reads as "in use by another account", and a reassigned
// wallet never carries the default flag into its new account.
func (s *WalletServiceImpl) ImportWallet(ctx context.Context, userID uuid.UUID, phrase string) (*domain.Wallet, error) {
	phrase = strings.TrimSpace(phrase)
	if !s.deriver.Validate(phrase) {
		return nil, apperror.ErrInvalidSeedPhrase()
	}

	address, err := s.deriver.AddressOf(phrase)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("derive address: %w", err))
	}
	address = domain.NormalizeAddress(address)

	existing, err := s.walletRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if existing != nil {
		if !existing.IsLoggedOut {
			return nil, apperror.ErrWalletInUse()
		}
		return s.reassignWallet(ctx, existing, userID, address, phrase, nil, true, apperror.ErrWalletInUse())
	}

	return s.createWallet(ctx, userID, address, phrase, nil)
}

// reassignWallet transfers a logged-out wallet to a new owner. The
// stored seed is opened with the supplied phrase first, so only someone
// holding the exact phrase the record was sealed with can take it over.
// conflictErr is what a lost reassignment race surfaces as, since the
// two entry points report the collision differently.
func (s *WalletServiceImpl) reassignWallet(
	ctx context.Context,
	existing *domain.Wallet,
	userID uuid.UUID,
	address, phrase string,
	pin *string,
	clearDefault bool,
	conflictErr *apperror.AppError,
) (*domain.Wallet, error) {
	if _, err := s.cipher.Open(existing.Seed, phrase); err != nil {
		if errors.Is(err, ErrAuthenticationFailed) {
			return nil, apperror.ErrSeedAuthenticationFailed(err)
		}
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("open stored seed: %w", err))
	}

	now := time.Now()
	wallet, err := s.walletRepo.Reassign(ctx, address, userID, clearDefault, now)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if wallet == nil {
		// Lost the race: someone else claimed the wallet between the
		// lookup and the conditional update.
		return nil, conflictErr
	}

	if pin != nil {
		if err := s.applyPin(ctx, wallet, *pin, now); err != nil {
			return nil, err
		}
	}

	s.log.Info().
		Str("wallet_address", address).
		Str("user_id", userID.String()).
		Bool("cleared_default", clearDefault).
		Msg("logged-out wallet reassigned to new owner")

	return wallet, nil
}

// createWallet seals the phrase and inserts a brand-new record. The
// store's uniqueness constraint on the address is the arbiter for
// concurrent creates from the same phrase.
func (s *WalletServiceImpl) createWallet(ctx context.Context, userID uuid.UUID, address, phrase string, pin *string) (*domain.Wallet, error) {
	sealed, err := s.cipher.Seal(phrase)
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("seal seed: %w", err))
	}

	activeCount, err := s.walletRepo.CountActiveByUser(ctx, userID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	now := time.Now()
	wallet := &domain.Wallet{
		ID:        uuid.New(),
		UserID:    userID,
		Address:   address,
		Seed:      sealed,
		Name:      domain.DefaultWalletName,
		IsDefault: activeCount == 0,
		Status:    domain.WalletStatusActive,
		Security: domain.WalletSecurity{
			LastAccessed: now,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if pin != nil {
		hash, salt, err := s.pins.Hash(*pin)
		if err != nil {
			return nil, apperror.ErrEncryptionFailure(fmt.Errorf("hash pin: %w", err))
		}
		wallet.Security.HasPin = true
		wallet.Security.PinHash = &hash
		wallet.Security.PinSalt = &salt
	}

	if err := s.walletRepo.Create(ctx, wallet); err != nil {
		if errors.Is(err, ports.ErrDuplicateAddress) {
			return nil, apperror.ErrAddressInUse()
		}
		return nil, apperror.ErrDatabaseError(err)
	}

	// Giveaway seeding is best-effort: a feed or store hiccup must not
	// undo the wallet creation. The ledger is created on first balance
	// read if this fails.
	if _, err := s.market.SeedGiveaway(ctx, userID, address); err != nil {
		s.log.Warn().Err(err).
			Str("wallet_address", address).
			Msg("giveaway seeding failed, wallet created without ledger")
	}

	s.log.Info().
		Str("wallet_address", address).
		Str("user_id", userID.String()).
		Bool("is_default", wallet.IsDefault).
		Msg("wallet created")

	return wallet, nil
}

// applyPin hashes and stores a new PIN on an already-persisted wallet.
func (s *WalletServiceImpl) applyPin(ctx context.Context, wallet *domain.Wallet, pin string, now time.Time) error {
	hash, salt, err := s.pins.Hash(pin)
	if err != nil {
		return apperror.ErrEncryptionFailure(fmt.Errorf("hash pin: %w", err))
	}
	wallet.Security.HasPin = true
	wallet.Security.PinHash = &hash
	wallet.Security.PinSalt = &salt
	wallet.UpdatedAt = now

	if err := s.walletRepo.Update(ctx, wallet); err != nil {
		return apperror.ErrDatabaseError(err)
	}
	return nil
}

// ListWallets returns the owner's active wallets, default first, then
// most recently created.
func (s *WalletServiceImpl) ListWallets(ctx context.Context, userID uuid.UUID) ([]domain.Wallet, error) {
	wallets, err := s.walletRepo.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return wallets, nil
}

// LogoutWallet marks the wallet logged out, making its address eligible
// for reassignment. The record and its sealed seed stay in storage.
func (s *WalletServiceImpl) LogoutWallet(ctx context.Context, userID uuid.UUID, address string) error {
	address = domain.NormalizeAddress(address)

	wallet, err := s.walletRepo.GetByAddress(ctx, address)
	if err != nil {
		return apperror.ErrDatabaseError(err)
	}
	if wallet == nil {
		return apperror.ErrWalletNotFound()
	}
	if wallet.UserID != userID {
		return apperror.ErrNotWalletOwner()
	}

	now := time.Now()
	wallet.IsLoggedOut = true
	wallet.LastLogout = &now
	wallet.UpdatedAt = now

	if err := s.walletRepo.Update(ctx, wallet); err != nil {
		return apperror.ErrDatabaseError(err)
	}

	s.log.Info().
		Str("wallet_address", address).
		Str("user_id", userID.String()).
		Msg("wallet logged out")

	return nil
}

// BuildChallenge builds a word-recall quiz for a valid phrase.
func (s *WalletServiceImpl) BuildChallenge(phrase string) (*domain.VerificationChallenge, error) {
	phrase = strings.TrimSpace(phrase)
	if !s.deriver.Validate(phrase) {
		return nil, apperror.ErrInvalidSeedPhrase()
	}

	challenge, err := s.challenges.Build(phrase, DefaultChallengeSize)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("build challenge: %w", err))
	}
	return challenge, nil
}

// VerifyChallenge checks the selections against the phrase. On full
// success the wallet at the phrase's derived address, when one exists,
// is marked verified.
func (s *WalletServiceImpl) VerifyChallenge(ctx context.Context, phrase string, selections []domain.WordSelection) (bool, error) {
	phrase = strings.TrimSpace(phrase)
	if !s.deriver.Validate(phrase) {
		return false, apperror.ErrInvalidSeedPhrase()
	}

	if !s.challenges.Verify(phrase, selections) {
		return false, nil
	}

	address, err := s.deriver.AddressOf(phrase)
	if err != nil {
		return false, apperror.InternalError(fmt.Errorf("derive address: %w", err))
	}
	address = domain.NormalizeAddress(address)

	wallet, err := s.walletRepo.GetByAddress(ctx, address)
	if err != nil {
		return false, apperror.ErrDatabaseError(err)
	}
	if wallet != nil && !wallet.IsVerified {
		now := time.Now()
		wallet.IsVerified = true
		wallet.Security.LastAccessed = now
		wallet.UpdatedAt = now
		if err := s.walletRepo.Update(ctx, wallet); err != nil {
			return false, apperror.ErrDatabaseError(err)
		}
	}

	return true, nil
}
