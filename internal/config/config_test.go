package config

import (
	"testing"

	"github.com/stretchr/testify/suite"

	apperrors "tally/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestLoad_Defaults() {
	cfg, err := Load()
	s.Require().NoError(err)

	s.Equal("data.csv", cfg.Input.Path)
	s.Equal("Category", cfg.Input.CategoryColumn)
	s.Equal("Value", cfg.Input.ValueColumn)
	s.Equal("summary.json", cfg.Output.Path)
	s.Equal(4, cfg.Output.IndentWidth)
	s.Equal("go1.22", cfg.Runtime.MinGoVersion)
	s.Equal("v1.4.0", cfg.Runtime.MinDecimalVersion)
	s.Equal("production", cfg.Logging.Mode)
}

func (s *ConfigTestSuite) TestLoad_EnvOverrides() {
	s.T().Setenv("TALLY_INPUT", "/srv/in/spend.csv")
	s.T().Setenv("TALLY_OUTPUT", "-")
	s.T().Setenv("TALLY_CATEGORY_COLUMN", "Bucket")
	s.T().Setenv("TALLY_VALUE_COLUMN", "Amount")
	s.T().Setenv("TALLY_INDENT_WIDTH", "2")
	s.T().Setenv("TALLY_LOG_MODE", "development")

	cfg, err := Load()
	s.Require().NoError(err)

	s.Equal("/srv/in/spend.csv", cfg.Input.Path)
	s.Equal("Bucket", cfg.Input.CategoryColumn)
	s.Equal("Amount", cfg.Input.ValueColumn)
	s.Equal(2, cfg.Output.IndentWidth)
	s.Equal("development", cfg.Logging.Mode)
	s.True(cfg.Output.WritesToStdout())
}

func (s *ConfigTestSuite) TestLoad_MalformedIntFallsBackToDefault() {
	s.T().Setenv("TALLY_INDENT_WIDTH", "wide")

	cfg, err := Load()
	s.Require().NoError(err)
	s.Equal(4, cfg.Output.IndentWidth)
}

func (s *ConfigTestSuite) TestLoad_InvalidValuesRejected() {
	testCases := []struct {
		name   string
		key    string
		value  string
		detail string
	}{
		{"bad go version", "TALLY_MIN_GO_VERSION", "1.22", "min_go_version"},
		{"bad decimal version", "TALLY_MIN_DECIMAL_VERSION", "latest", "min_decimal_version"},
		{"bad log mode", "TALLY_LOG_MODE", "verbose", "log_mode"},
		{"indent too large", "TALLY_INDENT_WIDTH", "9", "indent_width"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.T().Setenv(tc.key, tc.value)

			cfg, err := Load()
			s.Nil(cfg)
			s.Require().Error(err)
			s.True(apperrors.HasCode(err, apperrors.SystemConfigurationError))

			var runErr *apperrors.RunError
			s.Require().ErrorAs(err, &runErr)
			s.Require().Len(runErr.Details, 1)
			s.Contains(runErr.Details[0], tc.detail)
		})
	}
}

func (s *ConfigTestSuite) TestValidate_ReportsEveryViolation() {
	cfg := &Config{
		Input:   InputConfig{Path: "", CategoryColumn: " ", ValueColumn: "Value"},
		Output:  OutputConfig{Path: "out.json", IndentWidth: 0},
		Runtime: RuntimeConfig{MinGoVersion: "go1.22", MinDecimalVersion: "v1.4.0"},
		Logging: LoggingConfig{Mode: "production"},
	}

	err := cfg.Validate()
	s.Require().Error(err)

	var runErr *apperrors.RunError
	s.Require().ErrorAs(err, &runErr)
	s.Len(runErr.Details, 3)
}
