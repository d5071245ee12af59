package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"CandleGlass/internal/model"
)

// Ticker is one pre-configured watchlist entry.
type Ticker struct {
	Symbol string `yaml:"symbol"`
	Name   string `yaml:"name"`
}

// Config holds all application configuration.
type Config struct {
	Watchlist []Ticker `yaml:"watchlist"`
	Chart     struct {
		DefaultInterval string `yaml:"default_interval"`
	} `yaml:"chart"`
	DataSource struct {
		Proxy string `yaml:"proxy"`
		Mock  bool   `yaml:"mock"`
	} `yaml:"data_source"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Refresh struct {
		Enabled bool   `yaml:"enabled"`
		Cron    string `yaml:"cron"`
	} `yaml:"refresh"`
	Log struct {
		File  string `yaml:"file"`
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.DataSource.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("CANDLEGLASS_INTERVAL"); v != "" {
		cfg.Chart.DefaultInterval = v
	}
	if v := os.Getenv("CANDLEGLASS_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("CANDLEGLASS_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("CANDLEGLASS_MOCK"); v == "true" {
		cfg.DataSource.Mock = true
	}

	// Defaults
	if len(cfg.Watchlist) == 0 {
		cfg.Watchlist = []Ticker{
			{Symbol: "AAPL", Name: "Apple Inc."},
			{Symbol: "TSLA", Name: "Tesla"},
			{Symbol: "BTC-USD", Name: "Bitcoin USD"},
		}
	}
	if cfg.Chart.DefaultInterval == "" {
		cfg.Chart.DefaultInterval = model.DefaultInterval.Label()
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/candleglass.db"
	}
	if cfg.Refresh.Cron == "" {
		cfg.Refresh.Cron = "0 0/15 * * * *"
	}
	if cfg.Log.File == "" {
		cfg.Log.File = "logs/candleglass.log"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if len(c.Watchlist) == 0 {
		return fmt.Errorf("watchlist is empty")
	}
	for _, t := range c.Watchlist {
		if t.Symbol == "" {
			return fmt.Errorf("watchlist entry missing symbol")
		}
	}
	if _, ok := model.ParseInterval(c.Chart.DefaultInterval); !ok {
		return fmt.Errorf("unknown chart.default_interval %q", c.Chart.DefaultInterval)
	}
	return nil
}

// DefaultInterval returns the configured startup interval.
func (c *Config) DefaultInterval() model.Interval {
	iv, _ := model.ParseInterval(c.Chart.DefaultInterval)
	return iv
}
