package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	apperrors "tally/internal/errors"
	"tally/internal/validation"
)

// StdoutPath selects the standard output stream as the report destination.
const StdoutPath = "-"

type Config struct {
	Input   InputConfig
	Output  OutputConfig
	Runtime RuntimeConfig
	Logging LoggingConfig
}

type InputConfig struct {
	Path           string `json:"input_path" validate:"required"`
	CategoryColumn string `json:"category_column" validate:"required,column_name"`
	ValueColumn    string `json:"value_column" validate:"required,column_name"`
}

type OutputConfig struct {
	Path        string `json:"output_path" validate:"required"`
	IndentWidth int    `json:"indent_width" validate:"min=1,max=8"`
}

type RuntimeConfig struct {
	MinGoVersion      string `json:"min_go_version" validate:"required,go_version"`
	MinDecimalVersion string `json:"min_decimal_version" validate:"required,semver"`
}

type LoggingConfig struct {
	Mode string `json:"log_mode" validate:"oneof=production development"`
}

// Load builds the configuration from the environment. A .env file in the
// working directory is folded in when present but never required. The
// resolved configuration is validated before it is returned; violations come
// back as a single SystemConfigurationError listing every failing field.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Input: InputConfig{
			Path:           getEnv("TALLY_INPUT", "data.csv"),
			CategoryColumn: getEnv("TALLY_CATEGORY_COLUMN", "Category"),
			ValueColumn:    getEnv("TALLY_VALUE_COLUMN", "Value"),
		},
		Output: OutputConfig{
			Path:        getEnv("TALLY_OUTPUT", "summary.json"),
			IndentWidth: getIntEnv("TALLY_INDENT_WIDTH", 4),
		},
		Runtime: RuntimeConfig{
			MinGoVersion:      getEnv("TALLY_MIN_GO_VERSION", "go1.22"),
			MinDecimalVersion: getEnv("TALLY_MIN_DECIMAL_VERSION", "v1.4.0"),
		},
		Logging: LoggingConfig{
			Mode: getEnv("TALLY_LOG_MODE", "production"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the configuration against its field rules.
func (c *Config) Validate() error {
	details := validation.GetValidator().ValidateStruct(c)
	if len(details) > 0 {
		return apperrors.NewRunError(apperrors.SystemConfigurationError,
			apperrors.WithDetails(details...))
	}
	return nil
}

// WritesToStdout reports whether the report goes to standard output rather
// than a file.
func (c *OutputConfig) WritesToStdout() bool {
	return c.Path == StdoutPath || c.Path == ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
