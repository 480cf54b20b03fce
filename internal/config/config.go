// Package config provides application configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Storage backend names accepted in STORAGE_BACKEND.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Config holds application configuration values loaded from file or environment variables.
type Config struct {
	Env                string `mapstructure:"APP_ENV"`
	StorageBackend     string `mapstructure:"STORAGE_BACKEND"`
	DataDir            string `mapstructure:"DATA_DIR"`
	RedisURL           string `mapstructure:"REDIS_URL"`
	ShareBaseURL       string `mapstructure:"SHARE_BASE_URL"`
	SimulatedLatencyMS int    `mapstructure:"SIMULATED_LATENCY_MS"`
	AvatarMaxSizeMB    int    `mapstructure:"AVATAR_MAX_SIZE_MB"`
	SeedDemoData       bool   `mapstructure:"SEED_DEMO_DATA"`
}

// LoadConfig loads application configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AutomaticEnv()

	// The config file is optional; env vars and defaults cover everything.
	_ = viper.ReadInConfig()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("STORAGE_BACKEND", BackendSQLite)
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("REDIS_URL", "localhost:6379")
	viper.SetDefault("SHARE_BASE_URL", "https://devconnect.local")
	viper.SetDefault("SIMULATED_LATENCY_MS", 0)
	viper.SetDefault("AVATAR_MAX_SIZE_MB", 5)
	viper.SetDefault("SEED_DEMO_DATA", true)

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate ensures that required configuration values are present and consistent.
func (c *Config) Validate() error {
	switch c.StorageBackend {
	case BackendMemory, BackendSQLite, BackendRedis:
	default:
		return fmt.Errorf("STORAGE_BACKEND must be one of memory, sqlite, redis (got %q)", c.StorageBackend)
	}
	if c.StorageBackend == BackendSQLite && c.DataDir == "" {
		return errors.New("DATA_DIR is required for the sqlite backend")
	}
	if c.StorageBackend == BackendRedis && c.RedisURL == "" {
		return errors.New("REDIS_URL is required for the redis backend")
	}
	if c.AvatarMaxSizeMB <= 0 {
		return errors.New("AVATAR_MAX_SIZE_MB must be positive")
	}
	if c.SimulatedLatencyMS < 0 {
		return errors.New("SIMULATED_LATENCY_MS must not be negative")
	}
	return nil
}
