package simplesig

import "fmt"

// WarningKind classifies an entry in a RunReport.
type WarningKind string

const (
	// WarnDanglingPriority marks a priority relation whose target registry
	// identifier matched no parsed record.
	WarnDanglingPriority WarningKind = "dangling-priority"

	// WarnSelfPriority marks a priority relation from a format to itself.
	WarnSelfPriority WarningKind = "self-priority"

	// WarnPriorityCycle marks a priority relation dropped to break a cycle.
	WarnPriorityCycle WarningKind = "priority-cycle"

	// WarnDuplicateFormatID marks a registry FormatID claimed by more than
	// one format, leaving priority relations on that FormatID ambiguous.
	WarnDuplicateFormatID WarningKind = "duplicate-format-id"
)

// Warning is one recoverable problem encountered during a run. Subject
// names the format (or report) the warning belongs to.
type Warning struct {
	Kind    WarningKind
	Subject string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s: %s", w.Kind, w.Subject, w.Message)
}

// RecordFailure is one report excluded from the output: it could not be
// parsed or normalized, or its format identifier was superseded by a
// later report declaring the same PUID.
type RecordFailure struct {
	Source string
	Err    error
}

func (f RecordFailure) String() string {
	return fmt.Sprintf("%s: %v", f.Source, f.Err)
}

// RunReport accumulates record-level failures and reference-level warnings
// across a run. It replaces side-channel logging: the pipeline records
// problems here and the caller decides how to surface them.
//
// A RunReport is owned by a single pipeline run and is not safe for
// concurrent use.
type RunReport struct {
	Warnings []Warning
	Failures []RecordFailure
}

// NewRunReport creates an empty RunReport.
func NewRunReport() *RunReport {
	return &RunReport{}
}

// AddWarning records a reference-level warning.
func (r *RunReport) AddWarning(kind WarningKind, subject, format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, Warning{
		Kind:    kind,
		Subject: subject,
		Message: fmt.Sprintf(format, args...),
	})
}

// AddFailure records a report that was excluded from the output.
func (r *RunReport) AddFailure(source string, err error) {
	r.Failures = append(r.Failures, RecordFailure{Source: source, Err: err})
}

// HasProblems returns true if the run recorded any warning or failure.
func (r *RunReport) HasProblems() bool {
	return len(r.Warnings) > 0 || len(r.Failures) > 0
}
