package simplesig

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Signature file written successfully
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid configuration or parameters
	ExitInputError     = 11 // Input directory missing, unreadable, or empty
	ExitApprovalDenied = 12 // User denied output overwrite approval
	ExitWriteError     = 13 // Output file could not be written
)

const (
	// DefaultInputDir is the directory scanned for registry export reports
	// when no input directory is given on the command line.
	DefaultInputDir = "pronom"

	// DefaultOutputFile is the signature file name used when --output is not set.
	DefaultOutputFile = "simple-signature-file.yaml"

	// UTCTimeFormat is the timestamp layout embedded in the output header
	// and in timestamped file names.
	UTCTimeFormat = "2006-01-02T15:04:05Z"

	// ReportExtension is the file extension of registry export reports.
	// Files with any other extension are ignored by the scanner.
	ReportExtension = ".xml"

	// ConfigFileName is the optional per-project configuration file looked
	// up inside the input directory.
	ConfigFileName = "simplesig.yaml"
)

// DefaultForceApprovalCountdown is how long the forced approver counts
// down before overwriting an existing output file.
const DefaultForceApprovalCountdown = 3 * time.Second

// Environment variables honoured by the CLI, loadable from a .env file.
const (
	// EnvInputDir overrides the default input directory.
	EnvInputDir = "SIMPLESIG_PRONOM_DIR"

	// EnvOutputFile overrides the default output file path.
	EnvOutputFile = "SIMPLESIG_OUTPUT"
)
