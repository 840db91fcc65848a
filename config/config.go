package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Market   MarketConfig   `mapstructure:"market"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

// MarketConfig controls the DexScreener feed and the giveaway table.
// Pairs maps a tracked symbol to its chain-qualified pair address
// ("bsc/0x..."); Giveaway maps a symbol to the fixed amount every new
// wallet is seeded with. The two maps must cover the same symbols.
type MarketConfig struct {
	BaseURL      string             `mapstructure:"base_url"`
	FetchTimeout time.Duration      `mapstructure:"fetch_timeout"`
	Retries      int                `mapstructure:"retries"`
	RetryBackoff time.Duration      `mapstructure:"retry_backoff"`
	CacheTTL     time.Duration      `mapstructure:"cache_ttl"`
	Pairs        map[string]string  `mapstructure:"pairs"`
	Giveaway     map[string]float64 `mapstructure:"giveaway"`
}

// Symbols returns the tracked symbols in no particular order.
func (m MarketConfig) Symbols() []string {
	symbols := make([]string, 0, len(m.Pairs))
	for s := range m.Pairs {
		symbols = append(symbols, s)
	}
	return symbols
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: TW_ (Trust Wallet).
// Nested keys use underscore: TW_DATABASE_HOST, TW_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "trustwallet")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "trustwallet")
	v.SetDefault("market.base_url", "https://api.dexscreener.com/latest/dex/pairs")
	v.SetDefault("market.fetch_timeout", "5s")
	v.SetDefault("market.retries", 3)
	v.SetDefault("market.retry_backoff", "1s")
	v.SetDefault("market.cache_ttl", "30s")
	// BTCB/BUSD and ETH/BUSD PancakeSwap v2 pairs.
	v.SetDefault("market.pairs", map[string]string{
		"BTC": "bsc/0x61EB789d75A95CAa3fF50ed7E47b96c132fEc082",
		"ETH": "bsc/0x74E4716E431f45807DCF19f284c7aA99F18a4fbc",
	})
	v.SetDefault("market.giveaway", map[string]float64{
		"BTC": 5,
		"ETH": 100,
	})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: TW_DATABASE_HOST -> database.host
	v.SetEnvPrefix("TW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if len(cfg.Market.Pairs) != len(cfg.Market.Giveaway) {
		return nil, fmt.Errorf("market.pairs and market.giveaway must cover the same symbols")
	}
	for sym := range cfg.Market.Giveaway {
		if _, ok := cfg.Market.Pairs[sym]; !ok {
			return nil, fmt.Errorf("market.giveaway symbol %q has no pair address", sym)
		}
	}

	return &cfg, nil
}
