package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANAVHEOBA/trustwallet/config"
)

func testClient(baseURL string, attempts int) *DexScreenerClient {
	return NewDexScreenerClient(config.MarketConfig{
		BaseURL:      baseURL,
		FetchTimeout: 2 * time.Second,
		Retries:      attempts,
		RetryBackoff: 10 * time.Millisecond,
	}, zerolog.Nop())
}

func TestDexScreenerClient_FetchPairMetrics_PairsArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bsc/0xabc", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"pairs": [{
				"priceUsd": "65123.42",
				"volume": {"h24": "3100000000.5"},
				"priceChange": {"h24": -2.4},
				"liquidity": {"usd": "12000000"},
				"marketCap": 1280000000000
			}]
		}`))
	}))
	defer srv.Close()

	metrics, err := testClient(srv.URL, 3).FetchPairMetrics(context.Background(), "bsc/0xabc")
	require.NoError(t, err)
	assert.Equal(t, 65123.42, metrics.Price)
	assert.Equal(t, 3100000000.5, metrics.Volume24h)
	assert.Equal(t, -2.4, metrics.PriceChange24h)
	assert.Equal(t, 12000000.0, metrics.Liquidity)
	assert.Equal(t, 1280000000000.0, metrics.MarketCap)
}

func TestDexScreenerClient_FetchPairMetrics_SinglePair(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pair": {"priceUsd": "3200.10", "fdv": 384000000000}}`))
	}))
	defer srv.Close()

	metrics, err := testClient(srv.URL, 1).FetchPairMetrics(context.Background(), "bsc/0xdef")
	require.NoError(t, err)
	assert.Equal(t, 3200.10, metrics.Price)
	assert.Equal(t, 384000000000.0, metrics.MarketCap, "fdv backfills a missing marketCap")
}

func TestDexScreenerClient_FetchPairMetrics_RetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"pairs": [{"priceUsd": "100"}]}`))
	}))
	defer srv.Close()

	metrics, err := testClient(srv.URL, 3).FetchPairMetrics(context.Background(), "bsc/0xabc")
	require.NoError(t, err)
	assert.Equal(t, 100.0, metrics.Price)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDexScreenerClient_FetchPairMetrics_ExhaustsAttempts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL, 3).FetchPairMetrics(context.Background(), "bsc/0xabc")
	require.Error(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDexScreenerClient_FetchPairMetrics_EmptyPairs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"pairs": []}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL, 1).FetchPairMetrics(context.Background(), "bsc/0xabc")
	assert.Error(t, err)
}

func TestDexScreenerClient_FetchPairMetrics_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testClient(srv.URL, 3).FetchPairMetrics(ctx, "bsc/0xabc")
	assert.Error(t, err)
}

func TestFlexFloat_Unmarshal(t *testing.T) {
	cases := map[string]float64{
		`"123.45"`: 123.45,
		`67.8`:     67.8,
		`null`:     0,
		`""`:       0,
	}
	for in, want := range cases {
		var f flexFloat
		require.NoError(t, f.UnmarshalJSON([]byte(in)), in)
		assert.Equal(t, want, float64(f), in)
	}

	var f flexFloat
	assert.Error(t, f.UnmarshalJSON([]byte(`"not-a-number"`)))
}
