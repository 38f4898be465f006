package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// Base URL for the public CoinGecko API
	COINGECKO_PUBLIC_URL = "https://api.coingecko.com"

	// Default quote currency used when reshaping market data
	DEFAULT_CURRENCY = "usd"

	// Default port for the HTTP server
	DEFAULT_PORT = "8080"
)

// CoinGeckoConfig holds the upstream provider settings
type CoinGeckoConfig struct {
	// BaseURL of the provider, without the /api/v3 suffix
	BaseURL string `yaml:"base_url"`
	// APIKey carried in the x-cg-demo-api-key header; empty means unauthenticated
	APIKey string `yaml:"api_key"`
	// Currency is the quote currency for prices and market caps
	Currency string `yaml:"currency"`
	// ConnectionTimeout bounds connection establishment
	ConnectionTimeout time.Duration `yaml:"connection_timeout"`
	// RequestTimeout bounds the whole request including reading the response
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

type Config struct {
	Port      string          `yaml:"port"`
	CoinGecko CoinGeckoConfig `yaml:"coingecko"`
}

// DefaultConfig returns a configuration with all defaults applied
func DefaultConfig() *Config {
	return &Config{
		Port: DEFAULT_PORT,
		CoinGecko: CoinGeckoConfig{
			BaseURL:           COINGECKO_PUBLIC_URL,
			Currency:          DEFAULT_CURRENCY,
			ConnectionTimeout: 10 * time.Second,
			RequestTimeout:    200 * time.Second,
		},
	}
}

// LoadConfig reads the YAML configuration file at path and applies
// environment overrides on top. A missing file is not an error; the
// defaults are used so the service can run from environment alone.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		log.Printf("Config: %s not found, using defaults and environment", path)
	} else {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, err
		}
	}

	config.applyEnvOverrides()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// applyEnvOverrides applies the environment surface on top of file values
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("COINGECKO_API_URL"); v != "" {
		c.CoinGecko.BaseURL = v
	}
	if v := os.Getenv("API_KEY"); v != "" {
		c.CoinGecko.APIKey = v
	}
	if v := os.Getenv("DEFAULT_CURRENCY"); v != "" {
		c.CoinGecko.Currency = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.CoinGecko.BaseURL == "" {
		return fmt.Errorf("coingecko base_url cannot be empty")
	}
	if c.CoinGecko.Currency == "" {
		return fmt.Errorf("coingecko currency cannot be empty")
	}
	if c.CoinGecko.RequestTimeout <= 0 {
		return fmt.Errorf("coingecko request_timeout must be greater than 0, got %s", c.CoinGecko.RequestTimeout)
	}
	if c.CoinGecko.ConnectionTimeout <= 0 {
		return fmt.Errorf("coingecko connection_timeout must be greater than 0, got %s", c.CoinGecko.ConnectionTimeout)
	}
	return nil
}
