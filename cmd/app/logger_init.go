package main

import (
	"github.com/MyteScripts/investbot/internal/config"
	"github.com/MyteScripts/investbot/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source info is only useful in dev
	addSource := cfg.Environment == logger.EnvironmentDev || cfg.Environment == "development"

	version := logger.DefaultVersion
	if cfg.Environment == logger.EnvironmentProduction {
		version = logger.ProductionVersion
	}

	logger.Init(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		version,
		cfg.Environment,
		addSource,
	))
}
