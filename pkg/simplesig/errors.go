package simplesig

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := service.Run(ctx, cfg)
//	if errors.Is(err, simplesig.ErrApprovalDenied) {
//	    // Handle user declining to overwrite the output file
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInputDirMissing indicates the report directory does not exist or
	// cannot be opened.
	ErrInputDirMissing = errors.New("report directory not found")

	// ErrNoReports indicates the report directory contains no XML reports.
	ErrNoReports = errors.New("no reports found")

	// ErrApprovalDenied indicates the user declined to overwrite an
	// existing output file.
	ErrApprovalDenied = errors.New("approval denied")

	// ErrOutputWrite indicates the signature file could not be written.
	ErrOutputWrite = errors.New("output write failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrInputDirMissing):
		return ExitInputError
	case errors.Is(err, ErrNoReports):
		return ExitInputError
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	case errors.Is(err, ErrOutputWrite):
		return ExitWriteError
	}

	errStr := err.Error()

	// Cobra reports flag and argument misuse as plain errors; classify the
	// common phrasings as usage errors.
	if strings.HasPrefix(errStr, "unknown flag") ||
		strings.HasPrefix(errStr, "unknown shorthand flag") ||
		strings.HasPrefix(errStr, "invalid argument") ||
		strings.HasPrefix(errStr, "required flag") ||
		strings.Contains(errStr, "arg(s), received") {
		return ExitUsageError
	}

	// Filesystem errors that escaped without a sentinel still usually mean
	// the input directory could not be read.
	if strings.Contains(errStr, "no such file or directory") ||
		strings.Contains(errStr, "permission denied") {
		return ExitInputError
	}

	return ExitGeneralError
}
