package config

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/akvarelka1na1ohote/MiS-system-for-library/internal/domain"
)

// Config holds all configuration for our application
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Business  BusinessConfig  `mapstructure:"business"`
	Health    HealthConfig    `mapstructure:"health"`
}

type ServerConfig struct {
	Port string `mapstructure:"SERVER_PORT"`
	Host string `mapstructure:"SERVER_HOST"`
	Env  string `mapstructure:"ENV"`
}

type DatabaseConfig struct {
	URL             string        `mapstructure:"DATABASE_URL"`
	MaxOpenConns    int           `mapstructure:"DATABASE_MAX_OPEN_CONNS"`
	MaxIdleConns    int           `mapstructure:"DATABASE_MAX_IDLE_CONNS"`
	ConnMaxLifetime time.Duration `mapstructure:"DATABASE_CONN_MAX_LIFETIME"`
}

type RedisConfig struct {
	Host     string `mapstructure:"REDIS_HOST"`
	Port     string `mapstructure:"REDIS_PORT"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

type SchedulerConfig struct {
	DailyStatsSpec string `mapstructure:"SCHEDULER_DAILY_STATS_SPEC"`
	Timezone       string `mapstructure:"SCHEDULER_TIMEZONE"`
}

// BusinessConfig carries the circulation policy knobs. Fine parameters are
// explicit configuration, not process-wide constants.
type BusinessConfig struct {
	FinePerDay      string `mapstructure:"FINE_PER_DAY"`
	FineGraceDays   int    `mapstructure:"FINE_GRACE_DAYS"`
	FineMaxDays     int    `mapstructure:"FINE_MAX_DAYS"`
	FineMaxAmount   string `mapstructure:"FINE_MAX_AMOUNT"`
	LostCopyCharge  string `mapstructure:"LOST_COPY_CHARGE"`
	SummaryCacheTTL string `mapstructure:"SUMMARY_CACHE_TTL"`
}

type HealthConfig struct {
	Timeout string `mapstructure:"HEALTH_CHECK_TIMEOUT"`
}

// Load reads configuration from environment variables and files
func Load() (*Config, error) {
	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 25)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("FINE_PER_DAY", "10.0")
	viper.SetDefault("FINE_GRACE_DAYS", 3)
	viper.SetDefault("FINE_MAX_DAYS", 30)
	viper.SetDefault("FINE_MAX_AMOUNT", "300.0")
	viper.SetDefault("LOST_COPY_CHARGE", "300.0")
	viper.SetDefault("SUMMARY_CACHE_TTL", "60s")
	viper.SetDefault("SCHEDULER_DAILY_STATS_SPEC", "0 0 0 * * *")
	viper.SetDefault("SCHEDULER_TIMEZONE", "Europe/Moscow")
	viper.SetDefault("HEALTH_CHECK_TIMEOUT", "5s")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read from .env file (optional)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./deployments")

	// Don't fail if .env file doesn't exist
	_ = viper.ReadInConfig()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}

	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Business.FineGraceDays < 0 {
		return fmt.Errorf("FINE_GRACE_DAYS must not be negative")
	}

	if c.Business.FineMaxDays <= 0 {
		return fmt.Errorf("FINE_MAX_DAYS must be greater than 0")
	}

	for name, value := range map[string]string{
		"FINE_PER_DAY":     c.Business.FinePerDay,
		"FINE_MAX_AMOUNT":  c.Business.FineMaxAmount,
		"LOST_COPY_CHARGE": c.Business.LostCopyCharge,
	} {
		if _, err := decimal.NewFromString(value); err != nil {
			return fmt.Errorf("%s must be a valid decimal: %w", name, err)
		}
	}

	if _, err := time.ParseDuration(c.Business.SummaryCacheTTL); err != nil {
		return fmt.Errorf("SUMMARY_CACHE_TTL must be a valid duration: %w", err)
	}

	if _, err := time.ParseDuration(c.Health.Timeout); err != nil {
		return fmt.Errorf("HEALTH_CHECK_TIMEOUT must be a valid duration: %w", err)
	}

	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development" || c.Server.Env == "dev"
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production" || c.Server.Env == "prod"
}

// FinePolicy returns the configured fine parameters as a domain policy.
func (c *Config) FinePolicy() domain.FinePolicy {
	perDay, _ := decimal.NewFromString(c.Business.FinePerDay)
	maxFine, _ := decimal.NewFromString(c.Business.FineMaxAmount)
	lostCharge, _ := decimal.NewFromString(c.Business.LostCopyCharge)

	return domain.FinePolicy{
		PerDay:     perDay,
		GraceDays:  c.Business.FineGraceDays,
		MaxDays:    c.Business.FineMaxDays,
		MaxFine:    maxFine,
		LostCharge: lostCharge,
	}
}

// SummaryCacheTTL returns the library summary cache duration.
func (c *Config) SummaryCacheTTL() time.Duration {
	ttl, _ := time.ParseDuration(c.Business.SummaryCacheTTL)
	return ttl
}

// HealthTimeout returns the health check timeout as duration
func (c *Config) HealthTimeout() time.Duration {
	timeout, _ := time.ParseDuration(c.Health.Timeout)
	return timeout
}
