package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	APIKey      string // API key shared with the Discord bot process

	// SweepInterval is how often the venture sweep advances time-dependent state
	SweepInterval time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		DBUser:      getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:  getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:      getEnv(EnvDBHost, DefaultDBHost),
		DBPort:      getEnv(EnvDBPort, DefaultDBPort),
		DBName:      getEnv(EnvDBName, DefaultDBName),
		APIKey:      getEnv(EnvAPIKey, ""),
	}

	portStr := getEnv(EnvPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvPort, err)
	}
	cfg.Port = port

	sweepStr := getEnv(EnvSweepInterval, DefaultSweepInterval.String())
	sweep, err := time.ParseDuration(sweepStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvSweepInterval, err)
	}
	if sweep <= 0 {
		return nil, fmt.Errorf("%s must be positive", EnvSweepInterval)
	}
	cfg.SweepInterval = sweep

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%s environment variable must be set for security", EnvAPIKey)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
