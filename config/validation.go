package config

import (
	"fmt"
	"strings"
)

// validateConfig validates the loaded configuration values.
func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}

	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}

	if err := validateDispatchConfig(&config.Dispatch); err != nil {
		return fmt.Errorf("dispatch config validation failed: %w", err)
	}

	if err := validateDiscoveryConfig(&config.Discovery); err != nil {
		return fmt.Errorf("discovery config validation failed: %w", err)
	}

	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}

	if config.ReadTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ReadTimeout: %v", config.ReadTimeout)
	}

	if config.WriteTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got WriteTimeout: %v", config.WriteTimeout)
	}

	if config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got IdleTimeout: %v", config.IdleTimeout)
	}

	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.MaxConnections < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", config.MaxConnections)
	}

	if config.ConnectionTimeout <= 0 {
		return fmt.Errorf("connection timeout must be positive, got %v", config.ConnectionTimeout)
	}

	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	switch strings.ToLower(config.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", config.Level)
	}

	switch strings.ToLower(config.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid log format: %s", config.Format)
	}

	return nil
}

func validateDispatchConfig(config *DispatchConfig) error {
	if config.Workers < 1 {
		return fmt.Errorf("dispatch workers must be at least 1, got %d", config.Workers)
	}

	if config.QueueSize < 1 {
		return fmt.Errorf("dispatch queue size must be at least 1, got %d", config.QueueSize)
	}

	if config.DefaultLookback < 1 {
		return fmt.Errorf("default lookback must be at least 1 day, got %d", config.DefaultLookback)
	}

	if config.ForcedLookback < config.DefaultLookback {
		return fmt.Errorf("forced lookback (%d) must not be shorter than default lookback (%d)",
			config.ForcedLookback, config.DefaultLookback)
	}

	if config.RunTimeout <= 0 {
		return fmt.Errorf("run timeout must be positive, got %v", config.RunTimeout)
	}

	return nil
}

func validateDiscoveryConfig(config *DiscoveryConfig) error {
	if config.ProviderTimeout <= 0 {
		return fmt.Errorf("provider timeout must be positive, got %v", config.ProviderTimeout)
	}

	if config.BridgeTimeout <= 0 {
		return fmt.Errorf("bridge timeout must be positive, got %v", config.BridgeTimeout)
	}

	if config.ResultsPerKind < 1 {
		return fmt.Errorf("results per kind must be at least 1, got %d", config.ResultsPerKind)
	}

	if len(config.BridgeHosts) == 0 {
		return fmt.Errorf("at least one bridge host is required")
	}

	return nil
}
