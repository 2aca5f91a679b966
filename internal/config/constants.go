package config

import "time"

// Environment variable names
const (
	EnvPort          = "PORT"
	EnvLogLevel      = "LOG_LEVEL"
	EnvLogFormat     = "LOG_FORMAT"
	EnvEnvironment   = "ENVIRONMENT"
	EnvDBUser        = "DB_USER"
	EnvDBPassword    = "DB_PASSWORD"
	EnvDBHost        = "DB_HOST"
	EnvDBPort        = "DB_PORT"
	EnvDBName        = "DB_NAME"
	EnvAPIKey        = "API_KEY"
	EnvSweepInterval = "SWEEP_INTERVAL"
)

// Default configuration values
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultDBUser      = "postgres"
	DefaultDBPassword  = "postgres"
	DefaultDBHost      = "localhost"
	DefaultDBPort      = "5432"
	DefaultDBName      = "investbot"

	// DefaultSweepInterval matches the production sweep cadence
	DefaultSweepInterval = 5 * time.Minute
)
