package config

import (
	"fmt"
	"os"

	"github.com/benvon/task-rules/internal/logger"
	"github.com/benvon/task-rules/internal/models"
	"gopkg.in/yaml.v3"
)

const (
	// OutputJSON writes command results as indented JSON
	OutputJSON = "json"
	// OutputYAML writes command results as YAML
	OutputYAML = "yaml"
)

// Config holds application configuration
type Config struct {
	DebugMode       bool            `yaml:"debug_mode"`
	LogFormat       string          `yaml:"log_format"`
	OutputFormat    string          `yaml:"output_format"`
	DefaultCategory models.Category `yaml:"default_category"`
}

// Load loads configuration from environment variables. When TASKRULES_CONFIG
// names a YAML file, its values are applied first and environment variables
// override them.
func Load() (*Config, error) {
	return LoadFile(os.Getenv("TASKRULES_CONFIG"))
}

// LoadFile loads configuration from the YAML file at path (skipped when
// path is empty) and then applies environment overrides.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{
		DebugMode:       false,
		LogFormat:       logger.FormatJSON,
		OutputFormat:    OutputJSON,
		DefaultCategory: models.CategoryDaily,
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.DebugMode = getEnvBool("TASKRULES_DEBUG_MODE", cfg.DebugMode)
	cfg.LogFormat = getEnv("TASKRULES_LOG_FORMAT", cfg.LogFormat)
	cfg.OutputFormat = getEnv("TASKRULES_OUTPUT_FORMAT", cfg.OutputFormat)
	cfg.DefaultCategory = models.Category(getEnv("TASKRULES_DEFAULT_CATEGORY", string(cfg.DefaultCategory)))

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.LogFormat {
	case logger.FormatJSON, logger.FormatConsole:
	default:
		return fmt.Errorf("invalid log_format: %s (must be 'json' or 'console')", c.LogFormat)
	}

	switch c.OutputFormat {
	case OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output_format: %s (must be 'json' or 'yaml')", c.OutputFormat)
	}

	if !c.DefaultCategory.IsValid() {
		return fmt.Errorf("invalid default_category: %s", c.DefaultCategory)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}
