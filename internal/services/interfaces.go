package services

import (
	"tally/internal/models"
)

// EnvironmentServiceInterface defines the pre-flight runtime checks that run
// before any input is touched
type EnvironmentServiceInterface interface {
	// CheckEnvironment verifies the Go runtime and the decimal library meet
	// the configured minimum versions
	CheckEnvironment() error
}

// DatasetLoaderInterface defines how the input file becomes a Dataset
type DatasetLoaderInterface interface {
	// Load reads the CSV file at path into a Dataset, failing on missing
	// files and on inputs without data rows
	Load(path string) (*models.Dataset, error)
}

// SchemaValidatorInterface defines the required-column precondition
type SchemaValidatorInterface interface {
	// ValidateSchema confirms every required column is present, reporting
	// all missing columns at once
	ValidateSchema(dataset *models.Dataset) error
}

// ValueCoercerInterface defines the raw-to-numeric conversion step
type ValueCoercerInterface interface {
	// Coerce returns a new record slice with every value coerced to a
	// decimal; unparseable values become zero, never an error
	Coerce(dataset *models.Dataset) ([]models.Record, error)
}

// SummaryServiceInterface defines the grouping aggregation
type SummaryServiceInterface interface {
	// Summarize groups records by category and sums their values, ordered
	// by first appearance
	Summarize(records []models.Record) models.Summary
}

// ReportWriterInterface defines how a Summary reaches its destination
type ReportWriterInterface interface {
	// Write serializes the summary as indented JSON to the configured
	// destination; file destinations are written atomically
	Write(summary models.Summary) error
}

// PipelineServiceInterface defines the top-level orchestration
type PipelineServiceInterface interface {
	// Run drives the full pipeline through its states and reports the
	// outcome; it never terminates the process
	Run() (*models.RunResult, error)
}
