package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ServerConfig holds the settings of the HTTP service
type ServerConfig struct {
	// Server
	Port            string
	Environment     string
	ShutdownTimeout time.Duration

	// Logging
	LogLevel string

	// Observability
	MetricsEnabled bool
	OTelEndpoint   string
	SentryDSN      string

	// Requests
	MaxScenariosPerRequest int
}

// LoadServerConfig reads configuration from environment variables. Files listed
// in envFiles are loaded first with godotenv; a missing file is not an error and
// variables already set in the environment win.
func LoadServerConfig(envFiles ...string) (*ServerConfig, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &ServerConfig{
		Port:                   getEnv("PORT", "8080"),
		Environment:            getEnv("ENVIRONMENT", "development"),
		ShutdownTimeout:        time.Duration(getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 15)) * time.Second,
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		MetricsEnabled:         getEnvAsBool("METRICS_ENABLED", true),
		OTelEndpoint:           getEnv("OTEL_ENDPOINT", ""),
		SentryDSN:              getEnv("SENTRY_DSN", ""),
		MaxScenariosPerRequest: getEnvAsInt("MAX_SCENARIOS_PER_REQUEST", 20),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("PORT must be numeric, got %q", cfg.Port)
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("SHUTDOWN_TIMEOUT_SECONDS must be positive")
	}
	if cfg.MaxScenariosPerRequest <= 0 {
		return nil, fmt.Errorf("MAX_SCENARIOS_PER_REQUEST must be positive")
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production mode.
func (c *ServerConfig) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads an environment variable as integer
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := strings.TrimSpace(getEnv(key, ""))
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
