package simplesig

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// BuildConfig contains all parameters needed to build a signature file.
type BuildConfig struct {
	// InputDir is the directory containing registry export XML reports.
	InputDir string

	// OutputPath is the destination for the simplified signature file.
	OutputPath string

	// Timestamp embeds the generation time in the output header. Leaving
	// it off keeps output byte-identical across runs on unchanged input.
	Timestamp bool

	// GeneratedAt is the generation time used when Timestamp is set. The
	// CLI resolves it once so the header and a timestamped file name
	// carry the same instant. Zero means resolve at render time.
	GeneratedAt time.Time

	// Force selects the non-interactive approver: an existing output
	// file is overwritten after a short countdown instead of a prompt.
	Force bool

	// Verbose enables detailed logging.
	Verbose bool
}

// Validate checks if the BuildConfig has all required fields and valid
// values. It returns a multi-error if multiple validation failures occur.
func (c *BuildConfig) Validate() error {
	var errs []error

	if c.InputDir == "" {
		errs = append(errs, fmt.Errorf("InputDir is required: %w", ErrInvalidConfig))
	}

	if c.OutputPath == "" {
		errs = append(errs, fmt.Errorf("OutputPath is required: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// ReportFile is one discovered registry export report.
type ReportFile struct {
	// Path is the normalized, Unix-style path relative to the input
	// directory, prefixed with "./".
	Path string

	// Name is the base file name.
	Name string

	// Content is the raw report document.
	Content []byte

	// Checksum is the SHA-256 of the raw content, hex encoded.
	Checksum string

	// NormalizedChecksum is the SHA-256 of the whitespace-normalized
	// content, hex encoded. It feeds the output fingerprint, so
	// reformatting a report does not change the fingerprint.
	NormalizedChecksum string

	// SizeBytes is the report size on disk.
	SizeBytes int64

	// ModifiedAt is the report's last modification time.
	ModifiedAt time.Time
}

// ScanResult contains the outcome of scanning the input directory.
type ScanResult struct {
	Reports []ReportFile
}

// ReportScanner discovers registry export reports in a directory tree.
type ReportScanner interface {
	// ScanDirectory recursively scans inputDir and returns every XML
	// report found, in deterministic path order.
	ScanDirectory(inputDir string) (ScanResult, error)
}

// Approver requests user confirmation before an existing output file is
// overwritten.
type Approver interface {
	// RequestApproval asks for confirmation to overwrite outputPath.
	// It returns true if the operation may proceed.
	RequestApproval(ctx context.Context, outputPath string) (bool, error)
}
