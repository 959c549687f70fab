package logging

import (
	"runtime"
	"strings"
)

// Location is a position in the source code. The zero value means "unknown" and
// is omitted from rendered output.
type Location struct {
	File     string
	Line     int
	Function string
}

// IsEmpty reports whether the location is unknown.
func (l Location) IsEmpty() bool { return l.File == "" }

// Here captures the caller's source location. skip counts stack frames above the
// caller of Here, as in runtime.Caller.
func Here(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{}
	}
	function := ""
	if f := runtime.FuncForPC(pc); f != nil {
		function = f.Name()
		// keep only the package-qualified name, e.g. "scene.(*Cube).Update"
		if i := strings.LastIndexByte(function, '/'); i >= 0 {
			function = function[i+1:]
		}
	}
	return Location{File: file, Line: line, Function: function}
}
