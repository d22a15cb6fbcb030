package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"anketa/pkg/schema"

	"github.com/joho/godotenv"
)

// Config holds the application configuration.
type Config struct {
	LogLevel        string // debug, info, warn, error
	SurveyDir       string // directory holding record files
	SurveyType      string // definition used for new surveys
	MinAge          int    // youngest accepted respondent
	MaxAge          int    // oldest accepted respondent
	ReadConcurrency int    // parallel reads when loading all records
	CatalogDir      string // optional directory of extra survey definitions
}

// LoadConfig loads configuration from environment variables. Each env file that exists
// is loaded first; variables already present in the environment win.
func LoadConfig(envFiles ...string) (*Config, error) {
	for _, path := range envFiles {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, &ConfigurationError{Component: "env", Message: fmt.Sprintf("load %s", path), Err: err}
		}
	}

	logLevel := getEnvOrDefault("LOG_LEVEL", "info")

	// DEBUG flag overrides log level
	if os.Getenv("DEBUG") == "1" {
		logLevel = "debug"
	}

	minAge, err := getEnvInt("SURVEY_MIN_AGE", schema.DefaultMinAge)
	if err != nil {
		return nil, err
	}
	maxAge, err := getEnvInt("SURVEY_MAX_AGE", schema.DefaultMaxAge)
	if err != nil {
		return nil, err
	}
	concurrency, err := getEnvInt("SURVEY_READ_CONCURRENCY", 8)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		LogLevel:        logLevel,
		SurveyDir:       getEnvOrDefault("SURVEY_DIR", schema.DefaultSurveyDir),
		SurveyType:      getEnvOrDefault("SURVEY_TYPE", schema.DefaultSurveyType),
		MinAge:          minAge,
		MaxAge:          maxAge,
		ReadConcurrency: concurrency,
		CatalogDir:      os.Getenv("SURVEY_CATALOG_DIR"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.MinAge < 0 {
		return &ConfigurationError{Component: "SURVEY_MIN_AGE", Message: "must not be negative"}
	}
	if c.MinAge > c.MaxAge {
		return &ConfigurationError{
			Component: "SURVEY_MAX_AGE",
			Message:   fmt.Sprintf("must be at least SURVEY_MIN_AGE (%d), got %d", c.MinAge, c.MaxAge),
		}
	}
	if c.ReadConcurrency < 1 {
		return &ConfigurationError{Component: "SURVEY_READ_CONCURRENCY", Message: "must be at least 1"}
	}
	return nil
}

// getEnvOrDefault returns the value of an environment variable or a default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ConfigurationError{Component: key, Message: fmt.Sprintf("invalid integer %q", value), Err: err}
	}
	return n, nil
}
