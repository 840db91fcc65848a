package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ANAVHEOBA/trustwallet/config"
	"github.com/ANAVHEOBA/trustwallet/internal/core/domain"
	"github.com/ANAVHEOBA/trustwallet/internal/core/ports"
	"github.com/ANAVHEOBA/trustwallet/pkg/apperror"
)

// MarketServiceImpl implements ports.MarketService. Market data is
// strictly best-effort: every fetch degrades to zeroed metrics rather
// than failing the caller.
type MarketServiceImpl struct {
	balanceRepo ports.BalanceRepository
	feed        ports.MarketFeed
	cache       ports.MetricsCache
	cfg         config.MarketConfig
	log         zerolog.Logger
}

// NewMarketService creates a new MarketServiceImpl.
func NewMarketService(
	balanceRepo ports.BalanceRepository,
	feed ports.MarketFeed,
	cache ports.MetricsCache,
	cfg config.MarketConfig,
	log zerolog.Logger,
) *MarketServiceImpl {
	return &MarketServiceImpl{
		balanceRepo: balanceRepo,
		feed:        feed,
		cache:       cache,
		cfg:         cfg,
		log:         log,
	}
}

// FetchMetrics returns the metrics for one tracked symbol. Untracked
// symbols and feed failures both come back as zeroed metrics.
func (s *MarketServiceImpl) FetchMetrics(ctx context.Context, symbol string) domain.MarketMetrics {
	pair, ok := s.cfg.Pairs[symbol]
	if !ok {
		s.log.Warn().Str("symbol", symbol).Msg("no pair configured for symbol")
		return domain.MarketMetrics{}
	}

	if cached, err := s.cache.Get(ctx, symbol); err != nil {
		s.log.Warn().Err(err).Str("symbol", symbol).Msg("metrics cache read failed")
	} else if cached != nil {
		return *cached
	}

	metrics, err := s.feed.FetchPairMetrics(ctx, pair)
	if err != nil {
		s.log.Warn().Err(err).
			Str("symbol", symbol).
			Str("pair", pair).
			Msg("market fetch failed, falling back to zeroed metrics")
		return domain.MarketMetrics{}
	}

	if err := s.cache.Set(ctx, symbol, metrics, s.cfg.CacheTTL); err != nil {
		s.log.Warn().Err(err).Str("symbol", symbol).Msg("metrics cache write failed")
	}

	return metrics
}

// FetchAll fans out over every tracked symbol concurrently. The result
// always has one entry per symbol, zeroed where the fetch failed.
func (s *MarketServiceImpl) FetchAll(ctx context.Context) map[string]domain.MarketMetrics {
	symbols := s.cfg.Symbols()

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	result := make(map[string]domain.MarketMetrics, len(symbols))

	for _, symbol := range symbols {
		wg.Add(1)
		go func(symbol string) {
			defer wg.Done()
			m := s.FetchMetrics(ctx, symbol)
			mu.Lock()
			result[symbol] = m
			mu.Unlock()
		}(symbol)
	}
	wg.Wait()

	return result
}

// SeedGiveaway creates the balance ledger for a newly custodied wallet
// with the fixed giveaway allocation and prices it once. Idempotent: an
// existing ledger is returned untouched.
func (s *MarketServiceImpl) SeedGiveaway(ctx context.Context, userID uuid.UUID, address string) (*domain.CryptoWallet, error) {
	address = domain.NormalizeAddress(address)

	existing, err := s.balanceRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if existing != nil {
		return existing, nil
	}

	now := time.Now()
	wallet := &domain.CryptoWallet{
		ID:        uuid.New(),
		UserID:    userID,
		Address:   address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	wallet.InitializeGiveaway(s.cfg.Giveaway, now)
	wallet.ApplyMetrics(s.FetchAll(ctx), now)

	if err := s.balanceRepo.Create(ctx, wallet); err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}

	s.log.Info().
		Str("wallet_address", address).
		Float64("total_value", wallet.TotalValue()).
		Msg("giveaway ledger seeded")

	return wallet, nil
}

// GetWalletBalances refreshes one wallet's ledger against the feed and
// returns it. Persisting the refreshed prices is best-effort; a store
// write failure never hides the freshly priced ledger from the caller.
func (s *MarketServiceImpl) GetWalletBalances(ctx context.Context, address string) (*domain.CryptoWallet, error) {
	address = domain.NormalizeAddress(address)

	wallet, err := s.balanceRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	if wallet == nil {
		return nil, apperror.ErrBalancesNotFound()
	}

	now := time.Now()
	wallet.ApplyMetrics(s.FetchAll(ctx), now)
	wallet.UpdatedAt = now

	if err := s.balanceRepo.Save(ctx, wallet); err != nil {
		s.log.Warn().Err(err).
			Str("wallet_address", address).
			Msg("persisting refreshed balances failed")
	}

	return wallet, nil
}

// RefreshAllWallets fetches market data once and reprices every stored
// ledger. Per-wallet failures are logged and skipped so one bad record
// cannot stall the sweep.
func (s *MarketServiceImpl) RefreshAllWallets(ctx context.Context) error {
	wallets, err := s.balanceRepo.ListAll(ctx)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("list ledgers: %w", err))
	}
	if len(wallets) == 0 {
		return nil
	}

	metrics := s.FetchAll(ctx)
	now := time.Now()

	var (
		wg     sync.WaitGroup
		failed atomic.Int64
	)
	for i := range wallets {
		wg.Add(1)
		go func(w *domain.CryptoWallet) {
			defer wg.Done()
			w.ApplyMetrics(metrics, now)
			w.UpdatedAt = now
			if err := s.balanceRepo.Save(ctx, w); err != nil {
				failed.Add(1)
				s.log.Error().Err(err).
					Str("wallet_address", w.Address).
					Msg("refreshing wallet balances failed")
			}
		}(&wallets[i])
	}
	wg.Wait()

	s.log.Info().
		Int("wallets", len(wallets)).
		Int64("failed", failed.Load()).
		Msg("balance refresh sweep completed")

	return nil
}
