package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Server:   ServerConfig{Port: "8080", Host: "0.0.0.0", Env: "development"},
		Database: DatabaseConfig{URL: "postgres://localhost/library?sslmode=disable"},
		Business: BusinessConfig{
			FinePerDay:      "10.0",
			FineGraceDays:   3,
			FineMaxDays:     30,
			FineMaxAmount:   "300.0",
			LostCopyCharge:  "300.0",
			SummaryCacheTTL: "60s",
		},
		Health: HealthConfig{Timeout: "5s"},
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config passes",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing server port",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: "SERVER_PORT",
		},
		{
			name:    "missing database url",
			mutate:  func(c *Config) { c.Database.URL = "" },
			wantErr: "DATABASE_URL",
		},
		{
			name:    "negative grace days",
			mutate:  func(c *Config) { c.Business.FineGraceDays = -1 },
			wantErr: "FINE_GRACE_DAYS",
		},
		{
			name:    "zero max days",
			mutate:  func(c *Config) { c.Business.FineMaxDays = 0 },
			wantErr: "FINE_MAX_DAYS",
		},
		{
			name:    "garbage fine amount",
			mutate:  func(c *Config) { c.Business.FineMaxAmount = "lots" },
			wantErr: "valid decimal",
		},
		{
			name:    "garbage cache ttl",
			mutate:  func(c *Config) { c.Business.SummaryCacheTTL = "soon" },
			wantErr: "SUMMARY_CACHE_TTL",
		},
		{
			name:    "garbage health timeout",
			mutate:  func(c *Config) { c.Health.Timeout = "never" },
			wantErr: "HEALTH_CHECK_TIMEOUT",
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

func TestFinePolicy(t *testing.T) {
	policy := validConfig().FinePolicy()

	assert.True(t, policy.PerDay.Equal(decimal.NewFromFloat(10.0)))
	assert.Equal(t, 3, policy.GraceDays)
	assert.Equal(t, 30, policy.MaxDays)
	assert.True(t, policy.MaxFine.Equal(decimal.NewFromFloat(300.0)))
	assert.True(t, policy.LostCharge.Equal(decimal.NewFromFloat(300.0)))
}

func TestDurationAccessors(t *testing.T) {
	cfg := validConfig()

	assert.Equal(t, 60*time.Second, cfg.SummaryCacheTTL())
	assert.Equal(t, 5*time.Second, cfg.HealthTimeout())
}

func TestEnvHelpers(t *testing.T) {
	cfg := validConfig()
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	cfg.Server.Env = "prod"
	assert.True(t, cfg.IsProduction())
}
