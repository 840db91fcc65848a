// Package feed implements the DexScreener market-data client.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/ANAVHEOBA/trustwallet/config"
	"github.com/ANAVHEOBA/trustwallet/internal/core/domain"
)

// DexScreenerClient implements ports.MarketFeed against the public
// DexScreener pairs API. Each fetch gets a per-attempt timeout and a
// fixed backoff between attempts.
type DexScreenerClient struct {
	baseURL  string
	client   *http.Client
	attempts int
	backoff  time.Duration
	timeout  time.Duration
	log      zerolog.Logger
}

// NewDexScreenerClient creates a new DexScreenerClient.
func NewDexScreenerClient(cfg config.MarketConfig, log zerolog.Logger) *DexScreenerClient {
	attempts := cfg.Retries
	if attempts < 1 {
		attempts = 1
	}
	return &DexScreenerClient{
		baseURL:  cfg.BaseURL,
		client:   &http.Client{},
		attempts: attempts,
		backoff:  cfg.RetryBackoff,
		timeout:  cfg.FetchTimeout,
		log:      log,
	}
}

// flexFloat decodes a JSON value that the API encodes either as a
// number or as a decimal string ("65123.42"). Null and absent both
// decode to zero.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		*f = 0
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("parsing %q as float: %w", s, err)
		}
		*f = flexFloat(v)
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = flexFloat(v)
	return nil
}

type pairData struct {
	PriceUSD flexFloat `json:"priceUsd"`
	Volume   struct {
		H24 flexFloat `json:"h24"`
	} `json:"volume"`
	PriceChange struct {
		H24 flexFloat `json:"h24"`
	} `json:"priceChange"`
	Liquidity struct {
		USD flexFloat `json:"usd"`
	} `json:"liquidity"`
	MarketCap flexFloat `json:"marketCap"`
	FDV       flexFloat `json:"fdv"`
}

type pairsResponse struct {
	Pairs []pairData `json:"pairs"`
	Pair  *pairData  `json:"pair"`
}

// FetchPairMetrics fetches market metrics for a chain-qualified pair
// address ("bsc/0x..."). Retries every failure with a fixed backoff
// until the attempt budget runs out.
func (c *DexScreenerClient) FetchPairMetrics(ctx context.Context, pairAddress string) (domain.MarketMetrics, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, pairAddress)

	var lastErr error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(c.backoff):
			case <-ctx.Done():
				return domain.MarketMetrics{}, ctx.Err()
			}
		}

		metrics, err := c.fetchOnce(ctx, url)
		if err == nil {
			return metrics, nil
		}
		lastErr = err
		c.log.Warn().Err(err).
			Str("pair", pairAddress).
			Int("attempt", attempt).
			Msg("dexscreener fetch failed")
	}

	return domain.MarketMetrics{}, fmt.Errorf("fetching pair %s after %d attempts: %w", pairAddress, c.attempts, lastErr)
}

func (c *DexScreenerClient) fetchOnce(ctx context.Context, url string) (domain.MarketMetrics, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.MarketMetrics{}, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.MarketMetrics{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.MarketMetrics{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var body pairsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.MarketMetrics{}, fmt.Errorf("decoding response: %w", err)
	}

	// The endpoint answers with either a "pairs" array or a single
	// "pair" object depending on the route.
	var pair *pairData
	switch {
	case len(body.Pairs) > 0:
		pair = &body.Pairs[0]
	case body.Pair != nil:
		pair = body.Pair
	default:
		return domain.MarketMetrics{}, fmt.Errorf("no pair data in response")
	}

	marketCap := float64(pair.MarketCap)
	if marketCap == 0 {
		marketCap = float64(pair.FDV)
	}

	return domain.MarketMetrics{
		Price:          float64(pair.PriceUSD),
		MarketCap:      marketCap,
		Volume24h:      float64(pair.Volume.H24),
		PriceChange24h: float64(pair.PriceChange.H24),
		Liquidity:      float64(pair.Liquidity.USD),
	}, nil
}
