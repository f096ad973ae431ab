package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Logging   LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CatalogConfig holds catalog store configuration
type CatalogConfig struct {
	Driver      string `mapstructure:"driver"` // "memory" or "postgres"
	PostgresURL string `mapstructure:"postgres_url"`
	SeedFile    string `mapstructure:"seed_file"` // optional JSON seed for the memory driver
}

// CacheConfig holds response cache configuration
type CacheConfig struct {
	Type          string        `mapstructure:"type"` // "memory" or "redis"
	RedisAddrs    []string      `mapstructure:"redis_addrs"`
	RedisPassword string        `mapstructure:"redis_password"`
	TTL           time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP float64 `mapstructure:"per_ip"` // requests per second per client IP, 0 disables
	Burst int     `mapstructure:"burst"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/shopsearch/")

	// Environment variable settings
	v.SetEnvPrefix("SHOPSEARCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Catalog defaults
	v.SetDefault("catalog.driver", "memory")

	// Cache defaults
	v.SetDefault("cache.type", "memory")
	v.SetDefault("cache.ttl", "60s")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_ip", 25)
	v.SetDefault("ratelimit.burst", 50)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Catalog.Driver != "memory" && config.Catalog.Driver != "postgres" {
		return fmt.Errorf("catalog driver must be 'memory' or 'postgres', got: %s", config.Catalog.Driver)
	}

	if config.Catalog.Driver == "postgres" && config.Catalog.PostgresURL == "" {
		return fmt.Errorf("Postgres URL is required when catalog driver is 'postgres' (set SHOPSEARCH_CATALOG_POSTGRES_URL)")
	}

	if config.Cache.Type != "memory" && config.Cache.Type != "redis" {
		return fmt.Errorf("cache type must be 'memory' or 'redis', got: %s", config.Cache.Type)
	}

	if config.Cache.Type == "redis" && len(config.Cache.RedisAddrs) == 0 {
		return fmt.Errorf("Redis addresses are required when cache type is 'redis'")
	}

	if config.RateLimit.PerIP < 0 {
		return fmt.Errorf("ratelimit per_ip must not be negative")
	}

	return nil
}
