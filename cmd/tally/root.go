package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tally/internal/config"
	apperrors "tally/internal/errors"
	"tally/internal/logging"
	"tally/internal/services"
)

// version is stamped at build time via -ldflags.
var version = "dev"

func newRootCmd() *cobra.Command {
	var (
		inputPath      string
		outputPath     string
		categoryColumn string
		valueColumn    string
		logMode        string
	)

	cmd := &cobra.Command{
		Use:   "tally",
		Short: "Roll up a CSV export into per-category totals",
		Long: `Read a CSV export, sum its value column per category, and emit the
totals as an indented JSON array for downstream publishing.

Configuration comes from TALLY_* environment variables (a .env file is
honored when present); flags override the environment.

Exit status:
  0  summary written
  1  any failure (diagnostics go to stderr; stdout carries only JSON
     when writing there)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("input") {
				cfg.Input.Path = inputPath
			}
			if flags.Changed("output") {
				cfg.Output.Path = outputPath
			}
			if flags.Changed("category-column") {
				cfg.Input.CategoryColumn = categoryColumn
			}
			if flags.Changed("value-column") {
				cfg.Input.ValueColumn = valueColumn
			}
			if flags.Changed("log-mode") {
				cfg.Logging.Mode = logMode
			}
			if err := cfg.Validate(); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return err
			}

			logger, err := logging.New(cfg.Logging.Mode)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
				return apperrors.NewRunError(apperrors.SystemConfigurationError, apperrors.WithCause(err))
			}
			defer logger.Sync()

			pipeline := services.NewPipelineService(
				cfg,
				services.NewEnvironmentService(cfg.Runtime),
				services.NewDatasetLoader(logger),
				services.NewSchemaValidator(cfg.Input.CategoryColumn, cfg.Input.ValueColumn),
				services.NewValueCoercer(cfg.Input.CategoryColumn, cfg.Input.ValueColumn),
				services.NewSummaryService(),
				services.NewReportWriter(cfg.Output),
				logger,
			)

			// The pipeline logs its own diagnostic line; the error only
			// carries the exit code back to main.
			_, err = pipeline.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "Path to the input CSV (default from TALLY_INPUT)")
	cmd.Flags().StringVar(&outputPath, "output", "", "Destination for the JSON summary, '-' for stdout (default from TALLY_OUTPUT)")
	cmd.Flags().StringVar(&categoryColumn, "category-column", "", "Name of the grouping column (default from TALLY_CATEGORY_COLUMN)")
	cmd.Flags().StringVar(&valueColumn, "value-column", "", "Name of the numeric column (default from TALLY_VALUE_COLUMN)")
	cmd.Flags().StringVar(&logMode, "log-mode", "", "Log mode: production or development (default from TALLY_LOG_MODE)")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the tally version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "tally "+version)
		},
	}
}
