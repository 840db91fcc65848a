package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "trustwallet", cfg.Database.DBName)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, 5*time.Second, cfg.Market.FetchTimeout)
	assert.Equal(t, 3, cfg.Market.Retries)
	assert.Equal(t, time.Second, cfg.Market.RetryBackoff)
	assert.Equal(t, float64(5), cfg.Market.Giveaway["BTC"])
	assert.Equal(t, float64(100), cfg.Market.Giveaway["ETH"])
	assert.Contains(t, cfg.Market.Pairs["BTC"], "bsc/")
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9090
database:
  dbname: wallets_test
market:
  retries: 5
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "wallets_test", cfg.Database.DBName)
	assert.Equal(t, 5, cfg.Market.Retries)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Untouched keys keep their defaults.
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TW_SERVER_PORT", "7070")
	t.Setenv("TW_JWT_SECRET", "env-secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}

func TestLoad_GiveawayPairMismatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
market:
  pairs:
    BTC: "bsc/0x61EB789d75A95CAa3fF50ed7E47b96c132fEc082"
  giveaway:
    BTC: 5
    DOGE: 1000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{
		Host: "db.local", Port: 5433, User: "u", Password: "p",
		DBName: "wallets", SSLMode: "require",
	}
	assert.Equal(t, "postgres://u:p@db.local:5433/wallets?sslmode=require", d.DSN())
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache.local", Port: 6380}
	assert.Equal(t, "cache.local:6380", r.Addr())
}

func TestMarketConfig_Symbols(t *testing.T) {
	m := MarketConfig{Pairs: map[string]string{"BTC": "a", "ETH": "b"}}
	assert.ElementsMatch(t, []string{"BTC", "ETH"}, m.Symbols())
}
