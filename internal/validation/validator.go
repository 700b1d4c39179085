package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("go_version", validateGoVersion)
	_ = v.RegisterValidation("semver", validateSemver)
	_ = v.RegisterValidation("column_name", validateColumnName)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// ValidateStruct validates the struct and returns one human-readable detail
// per failing field, or nil when the struct is valid.
func (v *Validator) ValidateStruct(s interface{}) []string {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		details = append(details, formatFieldError(fieldErr))
	}
	return details
}

// formatFieldError converts a single field error into a readable message
func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s: value is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s: must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s: must be at most %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s: must be one of [%s]", fe.Field(), fe.Param())
	case "go_version":
		return fmt.Sprintf("%s: must look like a Go release (e.g. go1.22)", fe.Field())
	case "semver":
		return fmt.Sprintf("%s: must look like a module version (e.g. v1.4.0)", fe.Field())
	case "column_name":
		return fmt.Sprintf("%s: column names cannot be blank", fe.Field())
	default:
		return fmt.Sprintf("%s: failed %s validation", fe.Field(), fe.Tag())
	}
}

// Custom validation functions

// validateGoVersion validates strings like "go1.22" or "go1.22.3"
func validateGoVersion(fl validator.FieldLevel) bool {
	version := fl.Field().String()
	matched, _ := regexp.MatchString(`^go\d+\.\d+(\.\d+)?$`, version)
	return matched
}

// validateSemver validates module versions like "v1.4.0"
func validateSemver(fl validator.FieldLevel) bool {
	version := fl.Field().String()
	matched, _ := regexp.MatchString(`^v\d+\.\d+\.\d+$`, version)
	return matched
}

// validateColumnName rejects column names that are empty after trimming.
// CSV headers may legitimately contain spaces inside a name, so only fully
// blank names are invalid.
func validateColumnName(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
