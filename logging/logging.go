// Package logging renders structured log records to the console, and fatal error
// blocks to the platform's error surface.
//
// A log statement carries a severity level, the call site's source location, a
// message and zero or more typed attributes:
//
//	logging.Info("Opened file.", logging.String("path", path))
//
// Rendering is synchronous and single-threaded; records are built on the caller's
// stack and written before the statement returns. Fatal records (Fail, failed
// Check) are displayed and then the process exits; that path never returns.
package logging

import (
	"os"

	"github.com/gobwas/glob"
)

// DefaultBufferSize is the initial size of the console writer's line buffer.
// Longer lines grow it dynamically.
const DefaultBufferSize = 256

// Writer is a sink for finished log records.
type Writer interface {
	// Log renders a record and writes it to the log.
	Log(record *Record)
	// Fail renders a record as a fatal error, displays it, and exits the
	// program. It never returns.
	Fail(record *Record)
}

var (
	writer         Writer // nil when logging is unavailable
	debugFilter    glob.Glob
	consoleEnabled = true
	exitFunc       = os.Exit
)

// Init initializes the logging system. Records logged before Init are dropped.
// bufferSize <= 0 selects DefaultBufferSize.
func Init(bufferSize int) {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	writer = newConsoleWriter(bufferSize)
}

// SetConsoleEnabled controls whether Init attaches a console on platforms where
// programs do not get one by default. Ignored elsewhere.
func SetConsoleEnabled(enabled bool) {
	consoleEnabled = enabled
}

// SetDebugFilter restricts debug-level records to source files matching the given
// pattern. A nil filter logs debug records from all files.
func SetDebugFilter(filter glob.Glob) {
	debugFilter = filter
}

// Debug logs a debug-level message.
func Debug(message string, attrs ...Attr) {
	r := NewRecord(LevelDebug, Here(1), message, attrs...)
	r.Log()
}

// Info logs an info-level message.
func Info(message string, attrs ...Attr) {
	r := NewRecord(LevelInfo, Here(1), message, attrs...)
	r.Log()
}

// Warn logs a warning.
func Warn(message string, attrs ...Attr) {
	r := NewRecord(LevelWarn, Here(1), message, attrs...)
	r.Log()
}

// Error logs an error.
func Error(message string, attrs ...Attr) {
	r := NewRecord(LevelError, Here(1), message, attrs...)
	r.Log()
}

// Fail displays a fatal error and exits the program.
func Fail(message string, attrs ...Attr) {
	r := NewRecord(LevelError, Here(1), message, attrs...)
	r.Fail()
}

// Check verifies an invariant. If condition is false, it fails with the condition
// text captured as an attribute.
func Check(condition bool, conditionText string, attrs ...Attr) {
	if !condition {
		r := CheckFailure(Here(1), conditionText, attrs...)
		r.Fail()
	}
}
