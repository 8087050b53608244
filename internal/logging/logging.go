// Package logging gives every subsystem its own prefixed *log.Logger,
// the same standard-library logging the teacher repo uses throughout
// (log.Printf to a shared destination, no structured logging library in
// the example pack's dependency graph is a better fit for a CLI tool
// this size).
package logging

import (
	"io"
	"log"
	"os"
)

var output io.Writer = os.Stderr

// SetOutput redirects every logger created by New afterward; existing
// loggers keep writing to whatever output was set when they were built.
// Used by tests that want to capture log output.
func SetOutput(w io.Writer) { output = w }

// New returns a logger prefixed with "[component] ", matching the
// "bus=%d stop_idx=%d ..." key=value style already used for ad hoc
// context in the teacher's log lines.
func New(component string) *log.Logger {
	return log.New(output, "["+component+"] ", log.LstdFlags)
}
