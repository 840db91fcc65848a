package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"0xAbCdEf", "0xabcdef"},
		{"  0x123ABC  ", "0x123abc"},
		{"already-lower", "already-lower"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizeAddress(tt.in))
	}
}

func TestWallet_IsActive(t *testing.T) {
	w := &Wallet{Status: WalletStatusActive}
	assert.True(t, w.IsActive())

	w.Status = WalletStatusDisabled
	assert.False(t, w.IsActive())
}

func TestCryptoWallet_InitializeGiveaway(t *testing.T) {
	now := time.Now().UTC()
	w := &CryptoWallet{}
	w.InitializeGiveaway(map[string]float64{"ETH": 100, "BTC": 5}, now)

	require.Len(t, w.Balances, 2)
	// Deterministic symbol order.
	assert.Equal(t, "BTC", w.Balances[0].Symbol)
	assert.Equal(t, float64(5), w.Balances[0].Amount)
	assert.Equal(t, "ETH", w.Balances[1].Symbol)
	assert.Equal(t, float64(100), w.Balances[1].Amount)

	for _, b := range w.Balances {
		assert.Zero(t, b.PriceUSD)
		assert.Zero(t, b.Value)
		assert.True(t, b.Metrics.IsZero())
		assert.Equal(t, now, b.LastUpdated)
	}
}

func TestCryptoWallet_ApplyMetrics(t *testing.T) {
	now := time.Now().UTC()
	w := &CryptoWallet{}
	w.InitializeGiveaway(map[string]float64{"BTC": 5, "ETH": 100}, now)

	metrics := map[string]MarketMetrics{
		"BTC": {Price: 60000, MarketCap: 1.2e12, Volume24h: 3e10, PriceChange24h: 1.5, Liquidity: 4e8},
	}
	w.ApplyMetrics(metrics, now)

	btc, eth := w.Balances[0], w.Balances[1]
	assert.Equal(t, float64(60000), btc.PriceUSD)
	assert.Equal(t, float64(300000), btc.Value)
	assert.Equal(t, metrics["BTC"], btc.Metrics)

	// ETH absent from the map: untouched price, value recomputed.
	assert.Zero(t, eth.PriceUSD)
	assert.Zero(t, eth.Value)
	assert.True(t, eth.Metrics.IsZero())
}

func TestCryptoWallet_ApplyMetrics_Idempotent(t *testing.T) {
	now := time.Now().UTC()
	w := &CryptoWallet{}
	w.InitializeGiveaway(map[string]float64{"BTC": 5, "ETH": 100}, now)

	metrics := map[string]MarketMetrics{
		"BTC": {Price: 60000},
		"ETH": {Price: 3000},
	}
	w.ApplyMetrics(metrics, now)
	first := make([]CryptoBalance, len(w.Balances))
	copy(first, w.Balances)

	w.ApplyMetrics(metrics, now)
	assert.Equal(t, first, w.Balances)
}

func TestCryptoWallet_ApplyMetrics_ZeroPriceKeepsLastKnown(t *testing.T) {
	now := time.Now().UTC()
	w := &CryptoWallet{}
	w.InitializeGiveaway(map[string]float64{"BTC": 5}, now)

	w.ApplyMetrics(map[string]MarketMetrics{"BTC": {Price: 60000}}, now)
	require.Equal(t, float64(60000), w.Balances[0].PriceUSD)

	// Feed outage: zeroed metrics arrive. Last-known price survives, the
	// metrics snapshot is replaced.
	w.ApplyMetrics(map[string]MarketMetrics{"BTC": {}}, now)
	assert.Equal(t, float64(60000), w.Balances[0].PriceUSD)
	assert.Equal(t, float64(300000), w.Balances[0].Value)
	assert.True(t, w.Balances[0].Metrics.IsZero())
}

func TestCryptoWallet_TotalValue(t *testing.T) {
	w := &CryptoWallet{Balances: []CryptoBalance{
		{Value: 300000},
		{Value: 150000},
	}}
	assert.Equal(t, float64(450000), w.TotalValue())

	empty := &CryptoWallet{}
	assert.Zero(t, empty.TotalValue())
}
