// Package config loads server settings from an optional YAML file with
// environment overrides for values that should not live in a checked-in
// file (the token signing secret).
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultAddr      = ":8080"
	defaultDriver    = "memory"
	defaultLatencyMS = 500
	defaultTokenTTL  = 24 * time.Hour
)

type Config struct {
	Server struct {
		Addr string `yaml:"addr"`
	} `yaml:"server"`
	Store struct {
		Driver string `yaml:"driver"` // "memory" or "sqlite"
		Path   string `yaml:"path"`   // sqlite database file
	} `yaml:"store"`
	Gateway struct {
		LatencyMS int  `yaml:"latency_ms"`
		DemoLogin bool `yaml:"demo_login"`
	} `yaml:"gateway"`
	Auth struct {
		TokenSecret     string `yaml:"token_secret"`
		TokenTTLMinutes int    `yaml:"token_ttl_minutes"`
	} `yaml:"auth"`
}

// Load reads the YAML file at path when it is non-empty, then applies
// environment overrides and defaults. QUIZHUB_ADDR, QUIZHUB_TOKEN_SECRET,
// QUIZHUB_STORE_DRIVER, QUIZHUB_STORE_PATH and QUIZHUB_DEMO_LOGIN override
// their file counterparts.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Gateway.LatencyMS = defaultLatencyMS

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if v := os.Getenv("QUIZHUB_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("QUIZHUB_TOKEN_SECRET"); v != "" {
		cfg.Auth.TokenSecret = v
	}
	if v := os.Getenv("QUIZHUB_STORE_DRIVER"); v != "" {
		cfg.Store.Driver = v
	}
	if v := os.Getenv("QUIZHUB_STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv("QUIZHUB_DEMO_LOGIN"); v != "" {
		demo, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("QUIZHUB_DEMO_LOGIN: %w", err)
		}
		cfg.Gateway.DemoLogin = demo
	}

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaultAddr
	}
	if cfg.Store.Driver == "" {
		cfg.Store.Driver = defaultDriver
	}
	if cfg.Gateway.LatencyMS < 0 {
		return nil, fmt.Errorf("gateway latency_ms must not be negative, got %d", cfg.Gateway.LatencyMS)
	}

	switch cfg.Store.Driver {
	case "memory":
	case "sqlite":
		if cfg.Store.Path == "" {
			return nil, fmt.Errorf("store path is required for the sqlite driver")
		}
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}

	if cfg.Auth.TokenSecret == "" {
		return nil, fmt.Errorf("auth token_secret is required (set QUIZHUB_TOKEN_SECRET)")
	}

	return cfg, nil
}

// Latency returns the configured artificial gateway delay.
func (c *Config) Latency() time.Duration {
	return time.Duration(c.Gateway.LatencyMS) * time.Millisecond
}

// TokenTTL returns the configured token lifetime, defaulting to 24 hours.
func (c *Config) TokenTTL() time.Duration {
	if c.Auth.TokenTTLMinutes <= 0 {
		return defaultTokenTTL
	}
	return time.Duration(c.Auth.TokenTTLMinutes) * time.Minute
}
