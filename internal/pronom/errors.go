package pronom

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// ErrNoFileFormat indicates a document contained no FileFormat element.
var ErrNoFileFormat = errors.New("no FileFormat element found")

// ReportError represents a structured per-report failure with context and
// a helpful hint. It includes the report path and, for XML syntax
// problems, the line number.
type ReportError struct {
	FilePath string // Path to the report with the error
	Line     int    // Line number (0 if unknown)
	Field    string // Field name (e.g. "FormatID") if applicable
	Message  string // Primary error message
	Hint     string // Actionable suggestion for fixing
}

// Error implements the error interface with rich formatting.
func (e *ReportError) Error() string {
	location := e.FilePath
	if e.Line > 0 {
		location = fmt.Sprintf("%s (line %d)", e.FilePath, e.Line)
	}

	msg := fmt.Sprintf("report error in %s: %s", location, e.Message)
	if e.Field != "" {
		msg = fmt.Sprintf("report error in %s [field: %s]: %s", location, e.Field, e.Message)
	}

	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}

	return msg
}

// wrapXMLError converts xml package errors to ReportError with line
// numbers where the decoder provides them.
func wrapXMLError(err error, filePath string) error {
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		return &ReportError{
			FilePath: filePath,
			Line:     syntaxErr.Line,
			Message:  syntaxErr.Msg,
			Hint:     "Check that the report is well-formed XML; re-export it if it was truncated.",
		}
	}

	return &ReportError{
		FilePath: filePath,
		Message:  err.Error(),
		Hint:     "Verify the report conforms to the registry export schema.",
	}
}

// missingFieldError reports a required field that was absent or empty.
func missingFieldError(filePath, field string) error {
	return &ReportError{
		FilePath: filePath,
		Field:    field,
		Message:  "required field is missing or empty",
		Hint: "Every report must carry a registry FormatID and a PUID identifier.\n" +
			"Reports without them cannot be keyed or referenced and are skipped.",
	}
}
