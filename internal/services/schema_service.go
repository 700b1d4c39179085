package services

import (
	apperrors "tally/internal/errors"
	"tally/internal/models"
)

type schemaValidator struct {
	required []string
}

// NewSchemaValidator creates a new SchemaValidatorInterface instance that
// requires the given category and value columns.
func NewSchemaValidator(categoryColumn, valueColumn string) SchemaValidatorInterface {
	return &schemaValidator{required: []string{categoryColumn, valueColumn}}
}

// ValidateSchema confirms every required column appears in the dataset
// header. Matching is case- and name-exact. All missing columns are reported
// together so the producer can fix the export in one pass.
func (v *schemaValidator) ValidateSchema(dataset *models.Dataset) error {
	var missing []string
	for _, column := range v.required {
		if !dataset.HasColumn(column) {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		return apperrors.NewRunError(apperrors.SchemaMissingColumns,
			apperrors.WithDetails(missing...))
	}
	return nil
}
