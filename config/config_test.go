package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "rashik.db")
		t.Setenv("RASHIK_STORE_PATH", dbPath)

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Store.Type != "sqlite" {
			t.Errorf("Store.Type = %s, want sqlite", cfg.Store.Type)
		}
		if cfg.Store.Path != dbPath {
			t.Errorf("Store.Path = %s, want %s", cfg.Store.Path, dbPath)
		}
		if cfg.USDA.APIKey != "" {
			t.Errorf("USDA.APIKey = %s, want empty", cfg.USDA.APIKey)
		}
		if cfg.USDA.BaseURL != "https://api.nal.usda.gov/fdc" {
			t.Errorf("USDA.BaseURL = %s, want https://api.nal.usda.gov/fdc", cfg.USDA.BaseURL)
		}
		if cfg.Cache.TTL != 720*time.Hour {
			t.Errorf("Cache.TTL = %v, want 720h", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 100 {
			t.Errorf("RateLimit.PerIP = %d, want 100", cfg.RateLimit.PerIP)
		}
		if cfg.Planner.DefaultMeals != 3 || cfg.Planner.MinMeals != 1 || cfg.Planner.MaxMeals != 10 {
			t.Errorf("Planner = %+v, want 3/1/10", cfg.Planner)
		}
		if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
			t.Errorf("Log = %+v, want info/text", cfg.Log)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		t.Setenv("RASHIK_SERVER_PORT", "9090")
		t.Setenv("RASHIK_SERVER_ENVIRONMENT", "production")
		t.Setenv("RASHIK_USDA_API_KEY", "custom-api-key")
		t.Setenv("RASHIK_STORE_TYPE", "redis")
		t.Setenv("RASHIK_STORE_REDIS_URL", "redis://localhost:6379")
		t.Setenv("RASHIK_CACHE_TTL", "24h")
		t.Setenv("RASHIK_RATELIMIT_PER_IP", "200")
		t.Setenv("RASHIK_PLANNER_MAX_MEALS", "6")
		t.Setenv("RASHIK_LOG_FORMAT", "json")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.USDA.APIKey != "custom-api-key" {
			t.Errorf("USDA.APIKey = %s, want custom-api-key", cfg.USDA.APIKey)
		}
		if cfg.Store.Type != "redis" {
			t.Errorf("Store.Type = %s, want redis", cfg.Store.Type)
		}
		if cfg.Store.RedisURL != "redis://localhost:6379" {
			t.Errorf("Store.RedisURL = %s, want redis://localhost:6379", cfg.Store.RedisURL)
		}
		if cfg.Cache.TTL != 24*time.Hour {
			t.Errorf("Cache.TTL = %v, want 24h", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 200 {
			t.Errorf("RateLimit.PerIP = %d, want 200", cfg.RateLimit.PerIP)
		}
		if cfg.Planner.MaxMeals != 6 {
			t.Errorf("Planner.MaxMeals = %d, want 6", cfg.Planner.MaxMeals)
		}
		if cfg.Log.Format != "json" {
			t.Errorf("Log.Format = %s, want json", cfg.Log.Format)
		}
	})

	t.Run("fails validation for invalid store type", func(t *testing.T) {
		t.Setenv("RASHIK_STORE_TYPE", "invalid")

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error for invalid store type")
		}
	})

	t.Run("fails validation when redis URL missing for redis store", func(t *testing.T) {
		t.Setenv("RASHIK_STORE_TYPE", "redis")

		if _, err := Load(); err == nil {
			t.Error("Load() error = nil, want error for missing Redis URL")
		}
	})
}

func TestLoadEnvFile(t *testing.T) {
	chdirTemp := func(t *testing.T) {
		t.Helper()
		originalDir, _ := os.Getwd()
		t.Cleanup(func() { os.Chdir(originalDir) })
		os.Chdir(t.TempDir())
	}

	t.Run("returns nil when .env file doesn't exist", func(t *testing.T) {
		chdirTemp(t)

		if err := loadEnvFile(); err != nil {
			t.Errorf("loadEnvFile() error = %v, want nil when file doesn't exist", err)
		}
	})

	t.Run("loads variables and skips comments", func(t *testing.T) {
		chdirTemp(t)
		envContent := `
# Comment line
RASHIK_TEST_VAR_1=value1

RASHIK_TEST_VAR_2=value2
# RASHIK_TEST_COMMENTED=should_not_load
`
		if err := os.WriteFile(".env", []byte(envContent), 0o644); err != nil {
			t.Fatalf("Failed to create test .env file: %v", err)
		}
		t.Cleanup(func() {
			os.Unsetenv("RASHIK_TEST_VAR_1")
			os.Unsetenv("RASHIK_TEST_VAR_2")
		})

		if err := loadEnvFile(); err != nil {
			t.Fatalf("loadEnvFile() error = %v, want nil", err)
		}
		if os.Getenv("RASHIK_TEST_VAR_1") != "value1" {
			t.Errorf("RASHIK_TEST_VAR_1 = %s, want value1", os.Getenv("RASHIK_TEST_VAR_1"))
		}
		if os.Getenv("RASHIK_TEST_VAR_2") != "value2" {
			t.Errorf("RASHIK_TEST_VAR_2 = %s, want value2", os.Getenv("RASHIK_TEST_VAR_2"))
		}
		if os.Getenv("RASHIK_TEST_COMMENTED") != "" {
			t.Errorf("RASHIK_TEST_COMMENTED should not be loaded from comment")
		}
	})

	t.Run("doesn't override existing environment variables", func(t *testing.T) {
		chdirTemp(t)
		t.Setenv("RASHIK_TEST_OVERRIDE", "existing-value")
		if err := os.WriteFile(".env", []byte("RASHIK_TEST_OVERRIDE=new-value"), 0o644); err != nil {
			t.Fatalf("Failed to create test .env file: %v", err)
		}

		if err := loadEnvFile(); err != nil {
			t.Fatalf("loadEnvFile() error = %v, want nil", err)
		}
		if os.Getenv("RASHIK_TEST_OVERRIDE") != "existing-value" {
			t.Errorf("RASHIK_TEST_OVERRIDE = %s, want existing-value (should not override)", os.Getenv("RASHIK_TEST_OVERRIDE"))
		}
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Store:     StoreConfig{Type: "memory"},
			RateLimit: RateLimitConfig{PerIP: 10},
			Planner:   PlannerConfig{DefaultMeals: 3, MinMeals: 1, MaxMeals: 10},
			Log:       LogConfig{Level: "info", Format: "text"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid memory config", mutate: func(c *Config) {}},
		{name: "invalid store type", mutate: func(c *Config) { c.Store.Type = "invalid-type" }, wantErr: true},
		{name: "redis with URL", mutate: func(c *Config) { c.Store.Type = "redis"; c.Store.RedisURL = "redis://localhost:6379" }},
		{name: "redis without URL", mutate: func(c *Config) { c.Store.Type = "redis" }, wantErr: true},
		{name: "dynamodb without table", mutate: func(c *Config) { c.Store.Type = "dynamodb" }, wantErr: true},
		{name: "dynamodb with table", mutate: func(c *Config) { c.Store.Type = "dynamodb"; c.Store.DynamoTable = "rashik" }},
		{name: "default meals above max", mutate: func(c *Config) { c.Planner.DefaultMeals = 11 }, wantErr: true},
		{name: "min meals zero", mutate: func(c *Config) { c.Planner.MinMeals = 0 }, wantErr: true},
		{name: "unknown log format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: true},
		{name: "zero rate limit", mutate: func(c *Config) { c.RateLimit.PerIP = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
