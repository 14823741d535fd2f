package database

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Driver selects the snapshot database backend.
type Driver string

const (
	// DriverSQLite is the default: a local file, matching the app's
	// single-user offline mode.
	DriverSQLite Driver = "sqlite"
	// DriverPostgres backs the hosted sync mode.
	DriverPostgres Driver = "postgres"
)

// Config holds snapshot database configuration.
type Config struct {
	Driver Driver

	// SQLite
	Path string

	// Postgres
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// NewConfig creates a database configuration from the environment.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist, we'll use defaults or environment variables
		fmt.Println("Warning: .env file not found")
	}

	cfg := &Config{
		Driver:   Driver(getEnv("DB_DRIVER", string(DriverSQLite))),
		Path:     getEnv("DB_PATH", "budgetwise.db"),
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "budgetwise"),
		Password: getEnv("DB_PASSWORD", "budgetwise"),
		DBName:   getEnv("DB_NAME", "budgetwise"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	switch cfg.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}

	return cfg, nil
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.Driver == DriverSQLite {
		return c.Path
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// MigrateURL returns the database URL used by golang-migrate.
func (c *Config) MigrateURL() string {
	if c.Driver == DriverSQLite {
		return "sqlite3://" + c.Path
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
