package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without a config file", func(t *testing.T) {
		t.Setenv("FDA_CONFIG", "")
		t.Chdir(t.TempDir())

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, 4321, cfg.Api.Port)
		require.Equal(t, "/api/v1", cfg.Api.Prefix)
		require.Equal(t, []string{"BTC-USD", "ETH-USD", "TSLA"}, cfg.Symbols.Default)
		require.Equal(t, "sqlite", cfg.Store.Driver)
		require.Equal(t, 5, cfg.Refresh.MaxConcurrency)
		require.Equal(t, 15*time.Second, cfg.Refresh.FetchTimeout)
		require.Equal(t, DefaultUserAgent, cfg.Market.UserAgent)
		require.False(t, cfg.Market.Alpaca.Enabled())
	})

	t.Run("file then env overrides", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		err := os.WriteFile(path, []byte(`
api:
  port: 9000
symbols:
  default: [AAPL, MSFT]
refresh:
  max_concurrency: 2
  fetch_timeout: 3s
`), 0o644)
		require.NoError(t, err)

		t.Setenv("FDA_CONFIG", path)
		t.Setenv("FDA_REFRESH_MAX_CONCURRENCY", "8")
		t.Setenv("FDA_KAFKA_BROKERS", "a:9092, b:9092")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, 9000, cfg.Api.Port)
		require.Equal(t, []string{"AAPL", "MSFT"}, cfg.Symbols.Default)
		require.Equal(t, 8, cfg.Refresh.MaxConcurrency)
		require.Equal(t, 3*time.Second, cfg.Refresh.FetchTimeout)
		require.Equal(t, []string{"a:9092", "b:9092"}, cfg.Kafka.Brokers)
	})

	t.Run("explicit config path must exist", func(t *testing.T) {
		t.Setenv("FDA_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))
		_, err := LoadConfig()
		require.Error(t, err)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Api:   ApiConfig{Port: 4321},
			Store: StoreConfig{Driver: "sqlite", SqlitePath: "x.db"},
			Refresh: RefreshConfig{
				MaxConcurrency: 1,
				FetchTimeout:   time.Second,
				LookbackDays:   7,
				MinDelay:       0,
				MaxDelay:       time.Second,
			},
		}
	}

	t.Run("happy path", func(t *testing.T) {
		cfg := valid()
		require.NoError(t, cfg.Validate())
	})

	t.Run("rejects bad values", func(t *testing.T) {
		mutations := map[string]func(c *Config){
			"unknown driver":     func(c *Config) { c.Store.Driver = "mongo" },
			"postgres no dsn":    func(c *Config) { c.Store.Driver = "postgres" },
			"zero concurrency":   func(c *Config) { c.Refresh.MaxConcurrency = 0 },
			"zero timeout":       func(c *Config) { c.Refresh.FetchTimeout = 0 },
			"lookback too short": func(c *Config) { c.Refresh.LookbackDays = 1 },
			"min above max":      func(c *Config) { c.Refresh.MinDelay = 2 * time.Second },
			"bad port":           func(c *Config) { c.Api.Port = 0 },
			"negative interval":  func(c *Config) { c.Refresh.Interval = -time.Second },
		}
		for name, mutate := range mutations {
			cfg := valid()
			mutate(&cfg)
			require.Error(t, cfg.Validate(), name)
		}
	})
}
