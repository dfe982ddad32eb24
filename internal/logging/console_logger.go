package logging

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Message prefixes. Info lines carry none so summary output reads clean.
const (
	verbosePrefix = "[VERBOSE] "
	errorPrefix   = "[ERROR] "
)

// ConsoleLogger writes diagnostics to a single writer, stderr by default,
// keeping stdout free for machine-readable output such as the version
// string. Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	mu      sync.Mutex
	out     io.Writer
}

// NewConsoleLogger creates a ConsoleLogger writing to stderr. Verbose()
// calls produce output only when verbose is true.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return &ConsoleLogger{verbose: verbose, out: os.Stderr}
}

// emit writes one prefixed line under the lock. A format with no args is
// printed verbatim, so literal percent signs survive.
func (l *ConsoleLogger) emit(prefix, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) == 0 {
		fmt.Fprintln(l.out, prefix+format)
		return
	}
	fmt.Fprintf(l.out, prefix+format+"\n", args...)
}

// Verbose logs per-report diagnostics if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.emit(verbosePrefix, format, args)
}

// Info logs run progress and the end-of-run summary.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.emit("", format, args)
}

// Error logs excluded reports and fatal failures.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.emit(errorPrefix, format, args)
}
