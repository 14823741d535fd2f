// Package config loads application configuration from the environment.
package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	// Server
	Port string
	Env  string

	// Snapshot persistence
	SnapshotStorageKey string
	SnapshotDebounce   time.Duration

	// Auth
	JWTSecret        string
	JWTExpirationDur time.Duration

	// PasscodeHash is the bcrypt hash of the single-user passcode. Empty
	// disables the passcode check (development only).
	PasscodeHash string

	// SubscriptionTier is the tier granted at login: free, plus or premium.
	SubscriptionTier string
}

var appConfig *Config

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if present; plain environment variables win otherwise.
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		SnapshotStorageKey: getEnv("SNAPSHOT_STORAGE_KEY", "budgetwise_state"),

		JWTSecret:        getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
		PasscodeHash:     getEnv("PASSCODE_HASH", ""),
		SubscriptionTier: getEnv("SUBSCRIPTION_TIER", "free"),
	}

	debounceStr := getEnv("SNAPSHOT_DEBOUNCE", "2s")
	debounce, err := time.ParseDuration(debounceStr)
	if err != nil {
		log.Printf("Warning: invalid SNAPSHOT_DEBOUNCE value '%s', falling back to 2s\n", debounceStr)
		debounce = 2 * time.Second
	}
	config.SnapshotDebounce = debounce

	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	appConfig = config
	return config, nil
}

// Get returns the application configuration, loading it on first use.
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
