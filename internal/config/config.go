// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultResultsDir is where the optimizer drops its result files, relative to
// the analysis working directory.
const DefaultResultsDir = "../results"

// Config holds application configuration
type Config struct {
	ResultsDir string // Directory scanned for results and where charts are written
	ChartDPI   int
	LogLevel   string
	LogPretty  bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		ResultsDir: filepath.Clean(getEnv("ANALYSIS_RESULTS_DIR", DefaultResultsDir)),
		ChartDPI:   getEnvAsInt("ANALYSIS_CHART_DPI", 300),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogPretty:  getEnvAsBool("LOG_PRETTY", true),
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.ResultsDir == "" {
		return fmt.Errorf("results directory must not be empty")
	}
	if c.ChartDPI <= 0 {
		return fmt.Errorf("chart DPI must be positive, got %d", c.ChartDPI)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
