// Package config loads the gateway configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Gateway holds the runtime configuration for the HTTP gateway.
type Gateway struct {
	Port               int      `yaml:"port"`
	DatabasePath       string   `yaml:"database_path"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	RateLimitPerSec    int      `yaml:"rate_limit_per_second"`
	RateLimitBurst     int      `yaml:"rate_limit_burst"`
}

// DefaultGateway returns the default configuration.
func DefaultGateway() *Gateway {
	return &Gateway{
		Port:               3000,
		DatabasePath:       "db.json",
		CORSAllowedOrigins: []string{"*"},
		RateLimitPerSec:    50,
		RateLimitBurst:     100,
	}
}

// LoadGateway loads config/gateway.yaml when present, then applies environment
// overrides. A missing file is not an error; a malformed one is.
func LoadGateway() (*Gateway, error) {
	return LoadGatewayFromPath(filepath.Join("config", "gateway.yaml"))
}

// LoadGatewayFromPath loads the configuration from a specific path.
func LoadGatewayFromPath(path string) (*Gateway, error) {
	cfg := DefaultGateway()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse gateway config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// defaults + env only
	default:
		return nil, fmt.Errorf("read gateway config %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	return cfg, nil
}

func (c *Gateway) applyEnv() error {
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse PORT: %w", err)
		}
		c.Port = port
	}
	if v := strings.TrimSpace(os.Getenv("DB_PATH")); v != "" {
		c.DatabasePath = v
	}
	if v := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); v != "" {
		origins := make([]string, 0)
		for _, origin := range strings.Split(v, ",") {
			if o := strings.TrimSpace(origin); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORSAllowedOrigins = origins
	}
	return nil
}

// Addr returns the listen address.
func (c *Gateway) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
