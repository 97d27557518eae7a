package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	NodeEnv   string
	Port      string
	JWTSecret string
	Database  DatabaseConfig
	Platform  PlatformConfig
	Sync      SyncConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
	Alter    bool
}

// PlatformConfig holds the remote commerce platform credentials
type PlatformConfig struct {
	Store       string // <shop>.myshopify.com, bare shop name accepted
	AccessToken string
	APIVersion  string
	Timeout     time.Duration // per remote call
}

// SyncConfig holds synchronization and cache tuning
type SyncConfig struct {
	AutoEnabled  bool
	Interval     time.Duration // between scheduled full refreshes
	PageSize     int           // records per remote page, capped by the API
	DefaultLimit int           // max records per run unless the caller overrides
	DefaultTTL   time.Duration
	KindTTLs     map[string]time.Duration // per entity kind override
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	cfg := &Config{
		NodeEnv:   getEnv("NODE_ENV", "development"),
		Port:      getEnv("PORT", "3001"),
		JWTSecret: jwtSecret,
		Database: DatabaseConfig{
			Host:     getEnv("PG_HOST", "localhost"),
			Port:     getEnv("PG_PORT", "5432"),
			Username: getEnv("PG_USERNAME", "postgres"),
			Password: os.Getenv("PG_PASSWORD"),
			Database: getEnv("PG_DATABASE", "storesync"),
			Alter:    getEnv("DB_ALTER", "false") == "true",
		},
		Platform: PlatformConfig{
			Store:       os.Getenv("PLATFORM_STORE"),
			AccessToken: os.Getenv("PLATFORM_ACCESS_TOKEN"),
			APIVersion:  getEnv("PLATFORM_API_VERSION", "2024-04"),
			Timeout:     time.Duration(getIntEnv("PLATFORM_TIMEOUT_SECONDS", 30)) * time.Second,
		},
		Sync: SyncConfig{
			AutoEnabled:  getBoolEnv("SYNC_AUTO_ENABLED", true),
			Interval:     time.Duration(getIntEnv("SYNC_INTERVAL_MINUTES", 15)) * time.Minute,
			PageSize:     getIntEnv("SYNC_PAGE_SIZE", 100),
			DefaultLimit: getIntEnv("SYNC_DEFAULT_LIMIT", 1000),
			DefaultTTL:   time.Duration(getIntEnv("CACHE_TTL_SECONDS", 600)) * time.Second,
			KindTTLs:     loadKindTTLs(),
		},
	}

	return cfg, nil
}

// loadKindTTLs reads per-kind cache TTL overrides, e.g. CACHE_TTL_ORDERS_SECONDS=300.
func loadKindTTLs() map[string]time.Duration {
	ttls := make(map[string]time.Duration)
	overrides := map[string]string{
		"product":    "CACHE_TTL_PRODUCTS_SECONDS",
		"collection": "CACHE_TTL_COLLECTIONS_SECONDS",
		"customer":   "CACHE_TTL_CUSTOMERS_SECONDS",
		"order":      "CACHE_TTL_ORDERS_SECONDS",
		"promotion":  "CACHE_TTL_PROMOTIONS_SECONDS",
		"tutorial":   "CACHE_TTL_TUTORIALS_SECONDS",
	}
	for kind, key := range overrides {
		if v := os.Getenv(key); v != "" {
			if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
				ttls[kind] = time.Duration(seconds) * time.Second
			}
		}
	}
	return ttls
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if result, err := strconv.Atoi(value); err == nil {
			return result
		}
	}
	return defaultValue
}
