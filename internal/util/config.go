package util

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

type Config struct {
	Api     ApiConfig     `mapstructure:"api"`
	Symbols SymbolsConfig `mapstructure:"symbols"`
	Store   StoreConfig   `mapstructure:"store"`
	Refresh RefreshConfig `mapstructure:"refresh"`
	Market  MarketConfig  `mapstructure:"market"`
	Llm     LlmConfig     `mapstructure:"llm"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Kafka   KafkaConfig   `mapstructure:"kafka"`
}

type ApiConfig struct {
	Port   int    `mapstructure:"port"`
	Prefix string `mapstructure:"prefix"`
}

type SymbolsConfig struct {
	Default []string `mapstructure:"default"`
}

type StoreConfig struct {
	Driver      string `mapstructure:"driver"`
	SqlitePath  string `mapstructure:"sqlite_path"`
	PostgresDsn string `mapstructure:"postgres_dsn"`
}

type RefreshConfig struct {
	MaxConcurrency int           `mapstructure:"max_concurrency"`
	FetchTimeout   time.Duration `mapstructure:"fetch_timeout"`
	LookbackDays   int           `mapstructure:"lookback_days"`
	MinDelay       time.Duration `mapstructure:"min_delay"`
	MaxDelay       time.Duration `mapstructure:"max_delay"`
	PruneFailed    bool          `mapstructure:"prune_failed"`
	Interval       time.Duration `mapstructure:"interval"`
}

type MarketConfig struct {
	UserAgent string       `mapstructure:"user_agent"`
	Alpaca    AlpacaConfig `mapstructure:"alpaca"`
}

type AlpacaConfig struct {
	ApiKey    string `mapstructure:"api_key"`
	ApiSecret string `mapstructure:"api_secret"`
	BaseURL   string `mapstructure:"base_url"`
}

func (a AlpacaConfig) Enabled() bool {
	return a.ApiKey != "" && a.ApiSecret != ""
}

type LlmConfig struct {
	OpenAIApiKey    string        `mapstructure:"openai_api_key"`
	SummaryModel    string        `mapstructure:"summary_model"`
	AnalysisApiKey  string        `mapstructure:"analysis_api_key"`
	AnalysisBaseURL string        `mapstructure:"analysis_base_url"`
	AnalysisModel   string        `mapstructure:"analysis_model"`
	Timeout         time.Duration `mapstructure:"timeout"`
}

type RedisConfig struct {
	Addr       string        `mapstructure:"addr"`
	Password   string        `mapstructure:"password"`
	DB         int           `mapstructure:"db"`
	SummaryTTL time.Duration `mapstructure:"summary_ttl"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", 4321)
	v.SetDefault("api.prefix", "/api/v1")

	v.SetDefault("symbols.default", []string{"BTC-USD", "ETH-USD", "TSLA"})

	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.sqlite_path", "financial_data/financial_data.db")
	v.SetDefault("store.postgres_dsn", "")

	v.SetDefault("refresh.max_concurrency", 5)
	v.SetDefault("refresh.fetch_timeout", 15*time.Second)
	v.SetDefault("refresh.lookback_days", 7)
	v.SetDefault("refresh.min_delay", 200*time.Millisecond)
	v.SetDefault("refresh.max_delay", 1500*time.Millisecond)
	v.SetDefault("refresh.prune_failed", false)
	v.SetDefault("refresh.interval", time.Duration(0))

	v.SetDefault("market.user_agent", DefaultUserAgent)
	v.SetDefault("market.alpaca.api_key", "")
	v.SetDefault("market.alpaca.api_secret", "")
	v.SetDefault("market.alpaca.base_url", "https://data.alpaca.markets")

	v.SetDefault("llm.openai_api_key", "")
	v.SetDefault("llm.summary_model", "gpt-3.5-turbo")
	v.SetDefault("llm.analysis_api_key", "")
	v.SetDefault("llm.analysis_base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("llm.analysis_model", "llama3-70b-8192")
	v.SetDefault("llm.timeout", 30*time.Second)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.summary_ttl", 5*time.Minute)

	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "asset-metrics")
}

// LoadConfig reads config.yaml (or $FDA_CONFIG) if present, then lets
// FDA_* env vars override any key. A .env file is loaded first but never
// overrides variables that are already set.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("FDA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := os.Getenv("FDA_CONFIG")
	if path == "" {
		path = "config.yaml"
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); statErr == nil || os.Getenv("FDA_CONFIG") != "" {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Symbols.Default = splitList(cfg.Symbols.Default)
	cfg.Kafka.Brokers = splitList(cfg.Kafka.Brokers)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// splitList handles list values coming from env vars as a single
// comma separated string
func splitList(in []string) []string {
	out := []string{}
	for _, s := range in {
		for _, part := range strings.Split(s, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case "sqlite":
		if c.Store.SqlitePath == "" {
			return errors.New("config: store.sqlite_path is required for the sqlite driver")
		}
	case "postgres":
		if c.Store.PostgresDsn == "" {
			return errors.New("config: store.postgres_dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("config: unknown store.driver %q", c.Store.Driver)
	}
	if c.Api.Port <= 0 || c.Api.Port > 65535 {
		return fmt.Errorf("config: invalid api.port %d", c.Api.Port)
	}
	if c.Refresh.MaxConcurrency <= 0 {
		return errors.New("config: refresh.max_concurrency must be positive")
	}
	if c.Refresh.FetchTimeout <= 0 {
		return errors.New("config: refresh.fetch_timeout must be positive")
	}
	if c.Refresh.LookbackDays < 2 {
		return errors.New("config: refresh.lookback_days must be at least 2")
	}
	if c.Refresh.MinDelay < 0 || c.Refresh.MaxDelay < c.Refresh.MinDelay {
		return errors.New("config: refresh.min_delay must be >= 0 and <= refresh.max_delay")
	}
	if c.Refresh.Interval < 0 {
		return errors.New("config: refresh.interval must not be negative")
	}
	return nil
}
