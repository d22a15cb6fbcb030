package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

var configKeys = []string{
	"LOG_LEVEL", "DEBUG", "SURVEY_DIR", "SURVEY_TYPE",
	"SURVEY_MIN_AGE", "SURVEY_MAX_AGE", "SURVEY_READ_CONCURRENCY", "SURVEY_CATALOG_DIR",
}

// clearConfigEnv registers restoration of every config variable and unsets it.
func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name          string
		envVars       map[string]string
		expectedLevel string
		expectedDir   string
		expectedMin   int
		expectedMax   int
		expectError   bool
	}{
		{
			name:          "default values",
			envVars:       map[string]string{},
			expectedLevel: "info",
			expectedDir:   "Анкеты",
			expectedMin:   0,
			expectedMax:   120,
		},
		{
			name: "custom log level",
			envVars: map[string]string{
				"LOG_LEVEL": "warn",
			},
			expectedLevel: "warn",
			expectedDir:   "Анкеты",
			expectedMax:   120,
		},
		{
			name: "debug flag overrides log level",
			envVars: map[string]string{
				"LOG_LEVEL": "warn",
				"DEBUG":     "1",
			},
			expectedLevel: "debug",
			expectedDir:   "Анкеты",
			expectedMax:   120,
		},
		{
			name: "custom storage and ages",
			envVars: map[string]string{
				"SURVEY_DIR":     "/tmp/surveys",
				"SURVEY_MIN_AGE": "18",
				"SURVEY_MAX_AGE": "99",
			},
			expectedLevel: "info",
			expectedDir:   "/tmp/surveys",
			expectedMin:   18,
			expectedMax:   99,
		},
		{
			name:        "invalid integer",
			envVars:     map[string]string{"SURVEY_MAX_AGE": "old"},
			expectError: true,
		},
		{
			name:        "min above max",
			envVars:     map[string]string{"SURVEY_MIN_AGE": "50", "SURVEY_MAX_AGE": "40"},
			expectError: true,
		},
		{
			name:        "negative min",
			envVars:     map[string]string{"SURVEY_MIN_AGE": "-1"},
			expectError: true,
		},
		{
			name:        "zero concurrency",
			envVars:     map[string]string{"SURVEY_READ_CONCURRENCY": "0"},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig()

			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got none")
				}
				var cfgErr *ConfigurationError
				if err != nil && !errors.As(err, &cfgErr) {
					t.Errorf("Expected ConfigurationError, got %T", err)
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}

			if cfg.LogLevel != tt.expectedLevel {
				t.Errorf("LogLevel = %v, want %v", cfg.LogLevel, tt.expectedLevel)
			}
			if cfg.SurveyDir != tt.expectedDir {
				t.Errorf("SurveyDir = %v, want %v", cfg.SurveyDir, tt.expectedDir)
			}
			if cfg.MinAge != tt.expectedMin || cfg.MaxAge != tt.expectedMax {
				t.Errorf("ages = %d..%d, want %d..%d", cfg.MinAge, cfg.MaxAge, tt.expectedMin, tt.expectedMax)
			}
		})
	}
}

func TestLoadConfigEnvFile(t *testing.T) {
	clearConfigEnv(t)

	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	content := "SURVEY_DIR=from-file\nSURVEY_TYPE=developer\nLOG_LEVEL=error\nSURVEY_CATALOG_DIR=defs\n"
	if err := os.WriteFile(envPath, []byte(content), 0644); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	// Variables already set take precedence over the file.
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig(envPath, filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.SurveyDir != "from-file" {
		t.Errorf("SurveyDir = %q, want from-file", cfg.SurveyDir)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.CatalogDir != "defs" {
		t.Errorf("CatalogDir = %q, want defs", cfg.CatalogDir)
	}
}

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "env var set",
			key:          "ANKETA_TEST_VAR",
			defaultValue: "default",
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env var not set",
			key:          "ANKETA_TEST_VAR_MISSING",
			defaultValue: "default",
			envValue:     "",
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.envValue)

			result := getEnvOrDefault(tt.key, tt.defaultValue)
			if result != tt.expected {
				t.Errorf("getEnvOrDefault() = %v, want %v", result, tt.expected)
			}
		})
	}
}
