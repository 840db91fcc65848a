package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// MarketMetrics is a per-symbol snapshot from the market feed. A zero
// value is the fallback for a failed fetch.
type MarketMetrics struct {
	Price          float64 `json:"price"`
	MarketCap      float64 `json:"marketCap"`
	Volume24h      float64 `json:"volume24h"`
	PriceChange24h float64 `json:"priceChange24h"`
	Liquidity      float64 `json:"liquidity"`
}

// IsZero reports whether every metric field is zero.
func (m MarketMetrics) IsZero() bool {
	return m == MarketMetrics{}
}

// CryptoBalance is one symbol's holding inside a crypto wallet. Amount is
// fixed at giveaway initialization; only the price-derived fields mutate.
type CryptoBalance struct {
	Symbol      string        `json:"symbol"`
	Amount      float64       `json:"amount"`
	PriceUSD    float64       `json:"priceUsd"`
	Value       float64       `json:"value"`
	LastUpdated time.Time     `json:"lastUpdated"`
	Metrics     MarketMetrics `json:"metrics"`
}

// CryptoWallet is the balance ledger attached to a custodied wallet,
// keyed by the same lowercase address.
type CryptoWallet struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Address   string          `json:"wallet_address"`
	Balances  []CryptoBalance `json:"balances"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// InitializeGiveaway replaces the balance list with the fixed giveaway
// allocation, zero-valued until the first price refresh. Symbols are
// ordered deterministically.
func (w *CryptoWallet) InitializeGiveaway(amounts map[string]float64, now time.Time) {
	symbols := make([]string, 0, len(amounts))
	for s := range amounts {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	w.Balances = make([]CryptoBalance, 0, len(symbols))
	for _, s := range symbols {
		w.Balances = append(w.Balances, CryptoBalance{
			Symbol:      s,
			Amount:      amounts[s],
			LastUpdated: now,
		})
	}
}

// ApplyMetrics overwrites each balance's price fields from the matching
// symbol's metrics and recomputes value = amount * priceUsd. Entries
// without a matching symbol keep their prior price and metrics. A zero
// fetched price keeps the last-known priceUsd (the metrics snapshot is
// still replaced), so a transient feed outage does not wipe valuations.
// Pure mutation, no I/O; applying the same map twice with the same
// timestamp is a no-op after the first application.
func (w *CryptoWallet) ApplyMetrics(metrics map[string]MarketMetrics, now time.Time) {
	for i := range w.Balances {
		b := &w.Balances[i]
		if m, ok := metrics[b.Symbol]; ok {
			if m.Price != 0 {
				b.PriceUSD = m.Price
			}
			b.Metrics = m
			b.LastUpdated = now
		}
		b.Value = b.Amount * b.PriceUSD
	}
}

// TotalValue sums the USD value of all balances.
func (w *CryptoWallet) TotalValue() float64 {
	var total float64
	for _, b := range w.Balances {
		total += b.Value
	}
	return total
}
