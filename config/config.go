package config

import (
	"crypto-analysis/pkg/common"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrConfigurationMissing is returned when a required setting, such as the
// provider API key, is absent.
var ErrConfigurationMissing = errors.New("configuration missing")

type Config struct {
	Log           Logger        `mapstructure:"logger"`
	API           API           `mapstructure:"api"`
	CryptoCompare CryptoCompare `mapstructure:"cryptocompare"`
	Cache         Cache         `mapstructure:"cache"`
	Risk          Risk          `mapstructure:"risk"`
	Trade         TradeDefaults `mapstructure:"trade"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type API struct {
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RateLimit       float64       `mapstructure:"rate_limit"`
	RateBurst       int           `mapstructure:"rate_burst"`
	RateExpiresIn   time.Duration `mapstructure:"rate_expires_in"`
}

type CryptoCompare struct {
	BaseURL             string        `mapstructure:"base_url"`
	APIKey              string        `mapstructure:"api_key"`
	Timeout             time.Duration `mapstructure:"timeout"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	DefaultCurrency     string        `mapstructure:"default_currency"`
}

type Cache struct {
	Enabled           bool          `mapstructure:"enabled"`
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

// Risk holds the fixed profile used for the profitability curve.
type Risk struct {
	WinRate     float64 `mapstructure:"win_rate"`
	RewardRatio float64 `mapstructure:"reward_ratio"`
}

// TradeDefaults pre-fills the trade calculator form.
type TradeDefaults struct {
	EntryPrice     float64 `mapstructure:"entry_price"`
	StopLoss       float64 `mapstructure:"stop_loss"`
	TakeProfit     float64 `mapstructure:"take_profit"`
	AccountBalance float64 `mapstructure:"account_balance"`
	RiskPercent    float64 `mapstructure:"risk_percent"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")

	v.SetDefault("api.port", 8080)
	v.SetDefault("api.shutdown_timeout", 10*time.Second)
	v.SetDefault("api.rate_limit", 10)
	v.SetDefault("api.rate_burst", 30)
	v.SetDefault("api.rate_expires_in", 3*time.Minute)

	v.SetDefault("cryptocompare.base_url", "https://min-api.cryptocompare.com")
	v.SetDefault("cryptocompare.api_key", "")
	v.SetDefault("cryptocompare.timeout", 10*time.Second)
	v.SetDefault("cryptocompare.max_request_per_minute", 60)
	v.SetDefault("cryptocompare.default_currency", common.DEFAULT_CURRENCY)

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.default_expiration", 5*time.Minute)
	v.SetDefault("cache.cleanup_interval", 10*time.Minute)

	v.SetDefault("risk.win_rate", 0.5)
	v.SetDefault("risk.reward_ratio", 2.0)

	v.SetDefault("trade.entry_price", 100.0)
	v.SetDefault("trade.stop_loss", 95.0)
	v.SetDefault("trade.take_profit", 110.0)
	v.SetDefault("trade.account_balance", 10000.0)
	v.SetDefault("trade.risk_percent", 1.0)
}

// Load reads config.yaml from the working directory (or configPath when set),
// overlays environment variables and validates the result.
func Load(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
	}
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate fails fast on settings the service cannot run without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.CryptoCompare.APIKey) == "" {
		return fmt.Errorf("%w: cryptocompare.api_key (env CRYPTOCOMPARE_API_KEY)", ErrConfigurationMissing)
	}
	if c.CryptoCompare.BaseURL == "" {
		return fmt.Errorf("%w: cryptocompare.base_url", ErrConfigurationMissing)
	}
	if c.CryptoCompare.Timeout <= 0 {
		return fmt.Errorf("cryptocompare.timeout must be positive, got %s", c.CryptoCompare.Timeout)
	}
	if c.CryptoCompare.MaxRequestPerMinute <= 0 {
		return fmt.Errorf("cryptocompare.max_request_per_minute must be positive, got %d", c.CryptoCompare.MaxRequestPerMinute)
	}
	return nil
}
