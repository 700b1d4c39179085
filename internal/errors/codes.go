package errors

// ErrorCode represents a standardized error code used throughout the pipeline
type ErrorCode string

// Environment error codes (ENV_*)
const (
	EnvGoVersionTooOld      ErrorCode = "ENV_001"
	EnvDecimalVersionTooOld ErrorCode = "ENV_002"
)

// Input error codes (INPUT_*)
const (
	InputFileNotFound ErrorCode = "INPUT_001"
	InputEmpty        ErrorCode = "INPUT_002"
	InputUnreadable   ErrorCode = "INPUT_003"
)

// Schema error codes (SCHEMA_*)
const (
	SchemaMissingColumns ErrorCode = "SCHEMA_001"
)

// Output error codes (OUTPUT_*)
const (
	OutputWriteFailed ErrorCode = "OUTPUT_001"
)

// System error codes (SYSTEM_*)
const (
	SystemUnexpectedError    ErrorCode = "SYSTEM_001"
	SystemConfigurationError ErrorCode = "SYSTEM_002"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Environment errors
	EnvGoVersionTooOld:      "Go runtime is older than the required minimum",
	EnvDecimalVersionTooOld: "Decimal library is older than the required minimum",

	// Input errors
	InputFileNotFound: "Input file does not exist",
	InputEmpty:        "Input file contains no data rows",
	InputUnreadable:   "Input file could not be read",

	// Schema errors
	SchemaMissingColumns: "Required column(s) missing from input",

	// Output errors
	OutputWriteFailed: "Output destination could not be written",

	// System errors
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemConfigurationError: "Configuration is invalid",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}

// Process exit codes. Every failure currently maps to ExitFailure; the
// mapping is kept explicit per code so conditions can diverge later without
// touching call sites.
const (
	ExitSuccess = 0
	ExitFailure = 1
)

// GetExitCode returns the process exit code for the error code.
func GetExitCode(code ErrorCode) int {
	switch code {
	case EnvGoVersionTooOld, EnvDecimalVersionTooOld,
		InputFileNotFound, InputEmpty, InputUnreadable,
		SchemaMissingColumns, OutputWriteFailed,
		SystemUnexpectedError, SystemConfigurationError:
		return ExitFailure
	default:
		// Unknown error codes are still failures
		return ExitFailure
	}
}
