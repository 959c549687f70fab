//go:build !windows

package logging

import (
	"os"

	"github.com/glitchworks/gldemo/textbuf"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// consoleWriter writes rendered lines to stderr. The line buffer is reused across
// records; there is only one writer goroutine so no locking is needed.
type consoleWriter struct {
	buffer *textbuf.Buffer
	color  bool
}

func newConsoleWriter(bufferSize int) Writer {
	return &consoleWriter{
		buffer: textbuf.NewBuffer(make([]byte, bufferSize)),
		color:  shouldEnableColor(),
	}
}

// shouldEnableColor reports whether output should be colorized using terminal
// escape sequences.
func shouldEnableColor() bool {
	// If $NO_COLOR is non-empty, no color.
	if noColor := os.Getenv("NO_COLOR"); noColor != "" {
		return false
	}

	// If stderr is not a tty, no color.
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return false
	}

	// TERM=dumb used by Xcode.
	switch os.Getenv("TERM") {
	case "", "dumb":
		return false
	}
	return true
}

func (w *consoleWriter) Log(record *Record) {
	w.buffer.Clear()
	WriteLine(w.buffer, record, w.color, true)
	// Ignore errors, throw this into the void.
	_, _ = unix.Write(int(os.Stderr.Fd()), w.buffer.Contents())
}

func (w *consoleWriter) Fail(record *Record) {
	w.buffer.Clear()
	WriteLine(w.buffer, record, w.color, true)
	if w.color {
		w.buffer.AppendString("\x1b[31m")
	}
	w.buffer.AppendString("===== Fatal Error =====")
	if w.color {
		w.buffer.AppendString(colorReset)
	}
	w.buffer.AppendByte('\n')
	_, _ = unix.Write(int(os.Stderr.Fd()), w.buffer.Contents())
	exitFunc(1)
}
