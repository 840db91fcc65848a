package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANAVHEOBA/trustwallet/internal/core/domain"
)

func TestMetricsCache_SetAndGet(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewMetricsCache(client)
	ctx := context.Background()

	metrics := domain.MarketMetrics{
		Price:          65123.42,
		MarketCap:      1.28e12,
		Volume24h:      3.1e9,
		PriceChange24h: -2.4,
		Liquidity:      1.2e7,
	}

	// Get before set => nil
	result, err := cache.Get(ctx, "BTC")
	assert.NoError(t, err)
	assert.Nil(t, result)

	err = cache.Set(ctx, "BTC", metrics, 30*time.Second)
	require.NoError(t, err)

	result, err = cache.Get(ctx, "BTC")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, metrics, *result)
}

func TestMetricsCache_TTLExpiry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewMetricsCache(client)
	ctx := context.Background()

	err := cache.Set(ctx, "ETH", domain.MarketMetrics{Price: 3200}, 30*time.Second)
	require.NoError(t, err)

	s.FastForward(time.Minute)

	result, err := cache.Get(ctx, "ETH")
	assert.NoError(t, err)
	assert.Nil(t, result, "expired entry should read as a miss")
}

func TestMetricsCache_CorruptEntry(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewMetricsCache(client)

	require.NoError(t, s.Set("metrics:BTC", "not-json"))

	_, err := cache.Get(context.Background(), "BTC")
	assert.Error(t, err)
}

func TestMetricsCache_SymbolsIsolated(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	cache := NewMetricsCache(client)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "BTC", domain.MarketMetrics{Price: 65000}, time.Minute))
	require.NoError(t, cache.Set(ctx, "ETH", domain.MarketMetrics{Price: 3200}, time.Minute))

	btc, err := cache.Get(ctx, "BTC")
	require.NoError(t, err)
	eth, err := cache.Get(ctx, "ETH")
	require.NoError(t, err)
	assert.Equal(t, 65000.0, btc.Price)
	assert.Equal(t, 3200.0, eth.Price)
}
