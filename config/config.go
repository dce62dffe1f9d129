package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	USDA      USDAConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	Planner   PlannerConfig
	Log       LogConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// StoreConfig selects and configures the key-value backend
type StoreConfig struct {
	Type         string `mapstructure:"type"` // "memory", "sqlite", "redis" or "dynamodb"
	Path         string `mapstructure:"path"`
	RedisURL     string `mapstructure:"redis_url"`
	RedisPrefix  string `mapstructure:"redis_prefix"`
	DynamoTable  string `mapstructure:"dynamo_table"`
	DynamoRegion string `mapstructure:"dynamo_region"`
}

// USDAConfig holds USDA API configuration. An empty key disables imports.
type USDAConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
}

// CacheConfig controls how long USDA lookups are reused
type CacheConfig struct {
	TTL                    time.Duration `mapstructure:"ttl"`
	MinConfidenceThreshold float64       `mapstructure:"min_confidence"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"` // requests per second
	USDA  int `mapstructure:"usda"`   // requests per hour
}

// PlannerConfig bounds the number of meals in a daily plan
type PlannerConfig struct {
	DefaultMeals int `mapstructure:"default_meals"`
	MinMeals     int `mapstructure:"min_meals"`
	MaxMeals     int `mapstructure:"max_meals"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "text" or "json"
}

var storeTypes = map[string]bool{"memory": true, "sqlite": true, "redis": true, "dynamodb": true}

// Load loads configuration from a .env file, environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/rashik/")

	v.SetEnvPrefix("RASHIK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if config.Store.Type == "sqlite" && config.Store.Path == "" {
		path, err := DefaultDBPath()
		if err != nil {
			return nil, err
		}
		config.Store.Path = path
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads .env from the working directory when present.
// Variables already set in the environment are not overridden.
func loadEnvFile() error {
	if _, err := os.Stat(".env"); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load()
}

// setDefaults sets default configuration values. Every key gets a default so
// AutomaticEnv can override it during Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	v.SetDefault("store.type", "sqlite")
	v.SetDefault("store.path", "")
	v.SetDefault("store.redis_url", "")
	v.SetDefault("store.redis_prefix", "rashik:")
	v.SetDefault("store.dynamo_table", "")
	v.SetDefault("store.dynamo_region", "")

	v.SetDefault("usda.api_key", "")
	v.SetDefault("usda.base_url", "https://api.nal.usda.gov/fdc")

	v.SetDefault("cache.ttl", "720h") // 30 days
	v.SetDefault("cache.min_confidence", 40.0)

	v.SetDefault("ratelimit.per_ip", 100)
	v.SetDefault("ratelimit.usda", 1000)

	v.SetDefault("planner.default_meals", 3)
	v.SetDefault("planner.min_meals", 1)
	v.SetDefault("planner.max_meals", 10)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// validate validates the configuration
func validate(config *Config) error {
	if !storeTypes[config.Store.Type] {
		return fmt.Errorf("store type must be one of memory, sqlite, redis, dynamodb, got: %s", config.Store.Type)
	}
	if config.Store.Type == "redis" && config.Store.RedisURL == "" {
		return fmt.Errorf("redis URL is required when store type is 'redis' (set RASHIK_STORE_REDIS_URL)")
	}
	if config.Store.Type == "dynamodb" && config.Store.DynamoTable == "" {
		return fmt.Errorf("table name is required when store type is 'dynamodb' (set RASHIK_STORE_DYNAMO_TABLE)")
	}

	p := config.Planner
	if p.MinMeals < 1 || p.MaxMeals < p.MinMeals {
		return fmt.Errorf("planner bounds are invalid: min %d, max %d", p.MinMeals, p.MaxMeals)
	}
	if p.DefaultMeals < p.MinMeals || p.DefaultMeals > p.MaxMeals {
		return fmt.Errorf("planner default_meals %d is outside %d-%d", p.DefaultMeals, p.MinMeals, p.MaxMeals)
	}

	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("ratelimit.per_ip must be positive, got: %d", config.RateLimit.PerIP)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("log format must be 'text' or 'json', got: %s", config.Log.Format)
	}

	return nil
}
