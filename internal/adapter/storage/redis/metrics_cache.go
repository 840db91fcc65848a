package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ANAVHEOBA/trustwallet/internal/core/domain"
)

// MetricsCache implements ports.MetricsCache using Redis. Entries are
// JSON-encoded market metric snapshots with a short TTL, so one feed
// round-trip serves every wallet refreshed inside the window.
type MetricsCache struct {
	client *goredis.Client
	prefix string
}

// NewMetricsCache creates a new Redis-backed metrics cache.
func NewMetricsCache(client *goredis.Client) *MetricsCache {
	return &MetricsCache{
		client: client,
		prefix: "metrics:",
	}
}

// Get retrieves cached metrics for a symbol. Returns nil, nil on miss.
func (c *MetricsCache) Get(ctx context.Context, symbol string) (*domain.MarketMetrics, error) {
	val, err := c.client.Get(ctx, c.prefix+symbol).Bytes()
	if err != nil {
		if err == goredis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("redis metrics get: %w", err)
	}

	var m domain.MarketMetrics
	if err := json.Unmarshal(val, &m); err != nil {
		return nil, fmt.Errorf("redis metrics decode: %w", err)
	}
	return &m, nil
}

// Set stores metrics for a symbol with TTL.
func (c *MetricsCache) Set(ctx context.Context, symbol string, m domain.MarketMetrics, ttl time.Duration) error {
	val, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("redis metrics encode: %w", err)
	}
	if err := c.client.Set(ctx, c.prefix+symbol, val, ttl).Err(); err != nil {
		return fmt.Errorf("redis metrics set: %w", err)
	}
	return nil
}
