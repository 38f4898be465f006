package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DEFAULT_PORT, cfg.Port)
	assert.Equal(t, COINGECKO_PUBLIC_URL, cfg.CoinGecko.BaseURL)
	assert.Equal(t, DEFAULT_CURRENCY, cfg.CoinGecko.Currency)
	assert.Equal(t, 200*time.Second, cfg.CoinGecko.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.CoinGecko.ConnectionTimeout)
	assert.Empty(t, cfg.CoinGecko.APIKey)
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := writeConfigFile(t, `
port: "9090"
coingecko:
  base_url: "https://pro-api.coingecko.com"
  api_key: "test-key"
  currency: "eur"
  connection_timeout: 5s
  request_timeout: 30s
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://pro-api.coingecko.com", cfg.CoinGecko.BaseURL)
	assert.Equal(t, "test-key", cfg.CoinGecko.APIKey)
	assert.Equal(t, "eur", cfg.CoinGecko.Currency)
	assert.Equal(t, 5*time.Second, cfg.CoinGecko.ConnectionTimeout)
	assert.Equal(t, 30*time.Second, cfg.CoinGecko.RequestTimeout)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfigFile(t, `
coingecko:
  api_key: "only-a-key"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "only-a-key", cfg.CoinGecko.APIKey)
	assert.Equal(t, COINGECKO_PUBLIC_URL, cfg.CoinGecko.BaseURL)
	assert.Equal(t, DEFAULT_CURRENCY, cfg.CoinGecko.Currency)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `
coingecko:
  base_url: "https://file.example.com"
  currency: "eur"
`)

	t.Setenv("COINGECKO_API_URL", "https://env.example.com")
	t.Setenv("API_KEY", "env-key")
	t.Setenv("DEFAULT_CURRENCY", "gbp")
	t.Setenv("PORT", "3000")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.CoinGecko.BaseURL)
	assert.Equal(t, "env-key", cfg.CoinGecko.APIKey)
	assert.Equal(t, "gbp", cfg.CoinGecko.Currency)
	assert.Equal(t, "3000", cfg.Port)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := writeConfigFile(t, "port: [not: valid")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "empty base url",
			mutate:  func(c *Config) { c.CoinGecko.BaseURL = "" },
			wantErr: true,
		},
		{
			name:    "empty currency",
			mutate:  func(c *Config) { c.CoinGecko.Currency = "" },
			wantErr: true,
		},
		{
			name:    "zero request timeout",
			mutate:  func(c *Config) { c.CoinGecko.RequestTimeout = 0 },
			wantErr: true,
		},
		{
			name:    "negative connection timeout",
			mutate:  func(c *Config) { c.CoinGecko.ConnectionTimeout = -time.Second },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
