package config

import (
	"crypto-analysis/pkg/common"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("CRYPTOCOMPARE_API_KEY", "")

	cfg, err := Load("")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrConfigurationMissing)
}

func TestLoad_DefaultsWithEnvKey(t *testing.T) {
	t.Setenv("CRYPTOCOMPARE_API_KEY", "secret")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.CryptoCompare.APIKey)
	assert.Equal(t, "https://min-api.cryptocompare.com", cfg.CryptoCompare.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.CryptoCompare.Timeout)
	assert.Equal(t, common.DEFAULT_CURRENCY, cfg.CryptoCompare.DefaultCurrency)
	assert.Equal(t, 8080, cfg.API.Port)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 0.5, cfg.Risk.WinRate)
	assert.Equal(t, 2.0, cfg.Risk.RewardRatio)
	assert.Equal(t, 100.0, cfg.Trade.EntryPrice)
	assert.Equal(t, 95.0, cfg.Trade.StopLoss)
	assert.Equal(t, 110.0, cfg.Trade.TakeProfit)
	assert.Equal(t, 10000.0, cfg.Trade.AccountBalance)
	assert.Equal(t, 1.0, cfg.Trade.RiskPercent)
}

func TestLoad_FromFile(t *testing.T) {
	t.Setenv("CRYPTOCOMPARE_API_KEY", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
logger:
  level: debug
  encoding: console
api:
  port: 9090
cryptocompare:
  api_key: from-file
  timeout: 3s
cache:
  enabled: true
risk:
  reward_ratio: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Encoding)
	assert.Equal(t, 9090, cfg.API.Port)
	assert.Equal(t, "from-file", cfg.CryptoCompare.APIKey)
	assert.Equal(t, 3*time.Second, cfg.CryptoCompare.Timeout)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 3.0, cfg.Risk.RewardRatio)
	assert.Equal(t, 0.5, cfg.Risk.WinRate)
}

func TestValidate(t *testing.T) {
	valid := Config{CryptoCompare: CryptoCompare{
		BaseURL:             "http://localhost",
		APIKey:              "k",
		Timeout:             time.Second,
		MaxRequestPerMinute: 10,
	}}
	assert.NoError(t, valid.Validate())

	noTimeout := valid
	noTimeout.CryptoCompare.Timeout = 0
	assert.Error(t, noTimeout.Validate())

	noKey := valid
	noKey.CryptoCompare.APIKey = "   "
	assert.ErrorIs(t, noKey.Validate(), ErrConfigurationMissing)
}
