package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Env:                "development",
		StorageBackend:     BackendMemory,
		DataDir:            "./data",
		RedisURL:           "localhost:6379",
		ShareBaseURL:       "https://devconnect.local",
		SimulatedLatencyMS: 0,
		AvatarMaxSizeMB:    5,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid memory backend",
			mutate: func(c *Config) {},
		},
		{
			name:   "valid sqlite backend",
			mutate: func(c *Config) { c.StorageBackend = BackendSQLite },
		},
		{
			name:   "valid redis backend",
			mutate: func(c *Config) { c.StorageBackend = BackendRedis },
		},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.StorageBackend = "postgres" },
			wantErr: "STORAGE_BACKEND",
		},
		{
			name: "sqlite without data dir",
			mutate: func(c *Config) {
				c.StorageBackend = BackendSQLite
				c.DataDir = ""
			},
			wantErr: "DATA_DIR",
		},
		{
			name: "redis without URL",
			mutate: func(c *Config) {
				c.StorageBackend = BackendRedis
				c.RedisURL = ""
			},
			wantErr: "REDIS_URL",
		},
		{
			name:    "zero avatar ceiling",
			mutate:  func(c *Config) { c.AvatarMaxSizeMB = 0 },
			wantErr: "AVATAR_MAX_SIZE_MB",
		},
		{
			name:    "negative latency",
			mutate:  func(c *Config) { c.SimulatedLatencyMS = -1 },
			wantErr: "SIMULATED_LATENCY_MS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
