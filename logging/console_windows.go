//go:build windows

package logging

// Rendered lines use standard terminal sequences for colors; the console is put
// into virtual terminal mode so they work. See
// https://learn.microsoft.com/en-us/windows/console/console-virtual-terminal-sequences

import (
	"github.com/glitchworks/gldemo/textbuf"
	"golang.org/x/sys/windows"
)

var (
	kernel32         = windows.NewLazySystemDLL("kernel32.dll")
	procAllocConsole = kernel32.NewProc("AllocConsole")
)

// consoleWriter converts rendered UTF-8 lines to UTF-16 and writes them to a
// dedicated console. Fatal records additionally go to a blocking message box.
type consoleWriter struct {
	console    windows.Handle
	buffer     *textbuf.Buffer
	wideBuffer *textbuf.WideBuffer
}

func newConsoleWriter(bufferSize int) Writer {
	if !consoleEnabled {
		return nil
	}
	if ret, _, _ := procAllocConsole.Call(); ret == 0 {
		return nil
	}
	name, _ := windows.UTF16PtrFromString("CONOUT$")
	console, err := windows.CreateFile(name, windows.GENERIC_WRITE, windows.FILE_SHARE_WRITE,
		nil, windows.OPEN_EXISTING, 0, 0)
	if err != nil {
		return nil
	}
	mode := uint32(windows.ENABLE_PROCESSED_OUTPUT |
		windows.ENABLE_WRAP_AT_EOL_OUTPUT |
		windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
	if err := windows.SetConsoleMode(console, mode); err != nil {
		return nil
	}
	return &consoleWriter{
		console:    console,
		buffer:     textbuf.NewBuffer(make([]byte, bufferSize)),
		wideBuffer: textbuf.NewWideBuffer(make([]uint16, bufferSize)),
	}
}

func (w *consoleWriter) Log(record *Record) {
	w.buffer.Clear()
	WriteLine(w.buffer, record, true, true)

	w.wideBuffer.Clear()
	w.wideBuffer.AppendUTF8(w.buffer.Contents())
	units := w.wideBuffer.Contents()
	var written uint32
	_ = windows.WriteConsole(w.console, &units[0], uint32(len(units)), &written, nil)
}

func (w *consoleWriter) Fail(record *Record) {
	w.buffer.Clear()
	WriteBlock(w.buffer, record)

	w.wideBuffer.Clear()
	w.wideBuffer.AppendUTF8(w.buffer.Contents())
	w.wideBuffer.AppendUTF16([]uint16{0}) // MessageBoxW wants NUL termination
	units := w.wideBuffer.Contents()
	_, _ = windows.MessageBox(0, &units[0], nil, windows.MB_ICONERROR)
	exitFunc(1)
}
