// Package config loads the YAML security configuration. The JWT secret
// itself never lives in the file; the file only names the environment
// variable that carries it.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// SecurityConfig holds token, password, and rate limit settings.
type SecurityConfig struct {
	Security struct {
		JWT struct {
			SecretEnv        string `yaml:"secret_env"`
			AccessTTLMinutes int    `yaml:"access_ttl_minutes"`
			RefreshTTLHours  int    `yaml:"refresh_ttl_hours"`
		} `yaml:"jwt"`
		Password struct {
			BcryptCost int `yaml:"bcrypt_cost"`
		} `yaml:"password"`
		RateLimit struct {
			Limit         int `yaml:"limit"`
			WindowSeconds int `yaml:"window_seconds"`
		} `yaml:"rate_limit"`
	} `yaml:"security"`
}

// LoadSecurityConfig reads and validates the YAML file at path. The path
// comes from a CLI flag or a hardcoded default, never from user input.
func LoadSecurityConfig(path string) (*SecurityConfig, error) {
	// #nosec G304 -- path is provided by a trusted source
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config SecurityConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validateSecurityConfig(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &config, nil
}

func validateSecurityConfig(config *SecurityConfig) error {
	if config.Security.JWT.SecretEnv == "" {
		return fmt.Errorf("jwt secret_env is required")
	}
	if config.Security.JWT.AccessTTLMinutes <= 0 {
		return fmt.Errorf("jwt access_ttl_minutes must be positive")
	}
	if config.Security.JWT.RefreshTTLHours <= 0 {
		return fmt.Errorf("jwt refresh_ttl_hours must be positive")
	}
	if refresh, access := config.RefreshTTL(), config.AccessTTL(); refresh < access {
		return fmt.Errorf("jwt refresh ttl must not be shorter than access ttl")
	}
	if cost := config.Security.Password.BcryptCost; cost < 4 || cost > 31 {
		return fmt.Errorf("password bcrypt_cost must be between 4 and 31")
	}
	if config.Security.RateLimit.Limit <= 0 {
		return fmt.Errorf("rate_limit limit must be positive")
	}
	if config.Security.RateLimit.WindowSeconds <= 0 {
		return fmt.Errorf("rate_limit window_seconds must be positive")
	}
	return nil
}

// JWTSecret resolves the secret from the configured environment variable.
func (c *SecurityConfig) JWTSecret() string {
	return os.Getenv(c.Security.JWT.SecretEnv)
}

// AccessTTL returns the access token lifetime.
func (c *SecurityConfig) AccessTTL() time.Duration {
	return time.Duration(c.Security.JWT.AccessTTLMinutes) * time.Minute
}

// RefreshTTL returns the refresh token lifetime.
func (c *SecurityConfig) RefreshTTL() time.Duration {
	return time.Duration(c.Security.JWT.RefreshTTLHours) * time.Hour
}

// BcryptCost returns the configured bcrypt cost factor.
func (c *SecurityConfig) BcryptCost() int {
	return c.Security.Password.BcryptCost
}

// RateLimit returns the per-IP limit and window for the public credential
// endpoints.
func (c *SecurityConfig) RateLimit() (int, time.Duration) {
	return c.Security.RateLimit.Limit,
		time.Duration(c.Security.RateLimit.WindowSeconds) * time.Second
}
