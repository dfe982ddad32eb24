package simplesig_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jrh-151/simplesig/pkg/simplesig"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, simplesig.ExitSuccess},
		{"general error", errors.New("something went wrong"), simplesig.ExitGeneralError},
		{"invalid config", simplesig.ErrInvalidConfig, simplesig.ExitConfigError},
		{"wrapped invalid config", fmt.Errorf("OutputPath is required: %w", simplesig.ErrInvalidConfig), simplesig.ExitConfigError},
		{"input dir missing", simplesig.ErrInputDirMissing, simplesig.ExitInputError},
		{"no reports", simplesig.ErrNoReports, simplesig.ExitInputError},
		{"approval denied", simplesig.ErrApprovalDenied, simplesig.ExitApprovalDenied},
		{"output write", fmt.Errorf("rename: %w", simplesig.ErrOutputWrite), simplesig.ExitWriteError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := simplesig.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeForError_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unknown flag", errors.New("unknown flag: --foo"), simplesig.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x' in -x"), simplesig.ExitUsageError},
		{"accepts args", errors.New("accepts at most 1 arg(s), received 2"), simplesig.ExitUsageError},
		{"required flag", errors.New("required flag \"output\" not set"), simplesig.ExitUsageError},
		{"invalid argument", errors.New("invalid argument \"abc\" for \"--timestamp\""), simplesig.ExitUsageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := simplesig.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeForError_FilesystemPatterns(t *testing.T) {
	err := errors.New("open ./pronom: no such file or directory")
	if got := simplesig.ExitCodeForError(err); got != simplesig.ExitInputError {
		t.Errorf("ExitCodeForError(%v) = %d, want %d", err, got, simplesig.ExitInputError)
	}
}
