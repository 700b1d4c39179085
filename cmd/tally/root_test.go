package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	apperrors "tally/internal/errors"
)

type RootCommandTestSuite struct {
	suite.Suite
	dir string
}

func TestRootCommandTestSuite(t *testing.T) {
	suite.Run(t, new(RootCommandTestSuite))
}

func (s *RootCommandTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *RootCommandTestSuite) writeInput(contents string) string {
	path := filepath.Join(s.dir, "spend.csv")
	s.Require().NoError(os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func (s *RootCommandTestSuite) TestRun_WithFlags() {
	inputPath := s.writeInput("Category,Value\nA,10\nB,abc\nA,5\nB,\n")
	outputPath := filepath.Join(s.dir, "summary.json")

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--input", inputPath, "--output", outputPath})

	s.Require().NoError(cmd.Execute())

	data, err := os.ReadFile(outputPath)
	s.Require().NoError(err)
	s.Contains(string(data), `"Category": "A"`)
	s.Contains(string(data), `"TotalValue": 15`)
}

func (s *RootCommandTestSuite) TestRun_FlagsOverrideEnv() {
	s.T().Setenv("TALLY_INPUT", filepath.Join(s.dir, "does-not-exist.csv"))
	inputPath := s.writeInput("Bucket,Amount\nA,1\n")
	outputPath := filepath.Join(s.dir, "summary.json")

	cmd := newRootCmd()
	cmd.SetArgs([]string{
		"--input", inputPath,
		"--output", outputPath,
		"--category-column", "Bucket",
		"--value-column", "Amount",
	})

	s.Require().NoError(cmd.Execute())

	_, err := os.Stat(outputPath)
	s.NoError(err)
}

func (s *RootCommandTestSuite) TestRun_MissingInput() {
	outputPath := filepath.Join(s.dir, "summary.json")

	cmd := newRootCmd()
	cmd.SetArgs([]string{
		"--input", filepath.Join(s.dir, "nope.csv"),
		"--output", outputPath,
	})

	err := cmd.Execute()
	s.Require().Error(err)
	s.True(apperrors.HasCode(err, apperrors.InputFileNotFound))
	s.Equal(apperrors.ExitFailure, apperrors.GetExitCode(apperrors.CodeOf(err)))

	_, statErr := os.Stat(outputPath)
	s.True(os.IsNotExist(statErr))
}

func (s *RootCommandTestSuite) TestRun_InvalidLogMode() {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--log-mode", "chatty"})
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	s.Require().Error(err)
	s.True(apperrors.HasCode(err, apperrors.SystemConfigurationError))
	s.Contains(stderr.String(), "log_mode")
}

func (s *RootCommandTestSuite) TestVersionCommand() {
	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"version"})

	s.Require().NoError(cmd.Execute())
	s.Equal("tally dev\n", stdout.String())
}
