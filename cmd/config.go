package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/etnz/fleet"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

// Environment variables read by the application, and passed down to extensions.
const (
	EnvDataFile = "FLEET_DATA_FILE"
	EnvCurrency = "FLEET_CURRENCY"
	EnvLogLevel = "FLEET_LOG_LEVEL"
)

// Config holds the application settings.
type Config struct {
	// DataFile is the path to the fleet snapshot.
	DataFile string
	// Currency of all amounts.
	Currency string
	// LogLevel is the minimum level of diagnostics written to stderr.
	LogLevel string
}

// LoadConfig reads environment variables (optionally from the provided file) and
// returns the configuration. A missing env file is not an error.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		DataFile: getenvWithDefault(EnvDataFile, "FleetData.db"),
		Currency: getenvWithDefault(EnvCurrency, fleet.DefaultCurrency),
		LogLevel: getenvWithDefault(EnvLogLevel, "warn"),
	}
	return cfg, nil
}

// Validate ensures that the configuration is usable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.DataFile == "" {
		return errors.New("data file must not be empty")
	}
	if !fleet.IsKnownCurrency(c.Currency) {
		return fmt.Errorf("unknown currency %q", c.Currency)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

// Environ returns the configuration as environment variables.
func (c *Config) Environ() []string {
	return []string{
		EnvDataFile + "=" + c.DataFile,
		EnvCurrency + "=" + c.Currency,
		EnvLogLevel + "=" + c.LogLevel,
	}
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
