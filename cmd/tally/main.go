package main

import (
	"os"

	apperrors "tally/internal/errors"
)

// main is the only place in the program allowed to terminate the process.
// Every other layer returns errors up to this boundary.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(apperrors.GetExitCode(apperrors.CodeOf(err)))
	}
}
