package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "tally/internal/errors"
	"tally/internal/models"
)

type valueCoercer struct {
	categoryColumn string
	valueColumn    string
}

// NewValueCoercer creates a new ValueCoercerInterface instance
func NewValueCoercer(categoryColumn, valueColumn string) ValueCoercerInterface {
	return &valueCoercer{
		categoryColumn: categoryColumn,
		valueColumn:    valueColumn,
	}
}

// Coerce extracts the category and value columns from every row and converts
// each raw value to a decimal, substituting zero for anything unparseable.
// The dataset itself is never mutated; the result is a fresh record slice.
// The only error path is calling this on a dataset whose schema was never
// validated.
func (c *valueCoercer) Coerce(dataset *models.Dataset) ([]models.Record, error) {
	categoryIdx := dataset.ColumnIndex(c.categoryColumn)
	valueIdx := dataset.ColumnIndex(c.valueColumn)
	if categoryIdx < 0 || valueIdx < 0 {
		return nil, apperrors.NewRunError(apperrors.SystemUnexpectedError,
			apperrors.WithMessage(fmt.Sprintf("coercion requires a validated schema; columns %q/%q not found", c.categoryColumn, c.valueColumn)))
	}

	records := make([]models.Record, 0, len(dataset.Rows))
	for _, row := range dataset.Rows {
		record := models.Record{}
		if categoryIdx < len(row) {
			record.Category = row[categoryIdx]
		}
		if valueIdx < len(row) {
			record.RawValue = row[valueIdx]
		}
		record.Value = coerceValue(record.RawValue)
		records = append(records, record)
	}
	return records, nil
}

// coerceValue converts one raw field to a decimal. Empty, missing, and
// non-numeric values all become zero; malformed rows never abort a run.
func coerceValue(raw string) decimal.Decimal {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Zero
	}

	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero
	}
	return value
}
