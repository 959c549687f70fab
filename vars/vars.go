// Package vars holds the program's configuration variables, set from Name=value
// command-line arguments or from an optional YAML file.
//
// Parse failures are fatal: configuration happens once at startup and a bad value
// means the program cannot run as requested.
package vars

import (
	"github.com/c2h5oh/datasize"
	"github.com/glitchworks/gldemo/logging"
	"golang.org/x/exp/slices"
)

// Configuration variables.
var (
	// DebugContext enables debug rendering and debug-level logging.
	DebugContext bool
	// AllocConsole allocates a console for log output (Windows).
	AllocConsole bool
	// ProjectPath is the directory containing the project's data files.
	ProjectPath string
	// LogBufferSize is the initial size of the log line buffer.
	LogBufferSize = 256 * datasize.B
	// LogDebugFilter restricts debug logs to source files matching this glob pattern.
	LogDebugFilter string
)

type varKind int

const (
	kindBool varKind = iota
	kindString
	kindSize
)

// definition describes one configuration variable.
type definition struct {
	name        string
	kind        varKind
	boolValue   *bool
	stringValue *string
	sizeValue   *datasize.ByteSize
	description string
}

var definitions = []definition{
	{name: "DebugContext", kind: kindBool, boolValue: &DebugContext,
		description: "If true, create a debug rendering context."},
	{name: "AllocConsole", kind: kindBool, boolValue: &AllocConsole,
		description: "If true, allocate a console (Windows)."},
	{name: "ProjectPath", kind: kindString, stringValue: &ProjectPath,
		description: "Path to the directory containing this project."},
	{name: "LogBufferSize", kind: kindSize, sizeValue: &LogBufferSize,
		description: "Initial size of the log line buffer, e.g. 256B or 4KB."},
	{name: "LogDebugFilter", kind: kindString, stringValue: &LogDebugFilter,
		description: "Glob over source file paths allowed to emit debug logs."},
}

// fail is replaced in tests; logging.Fail never returns.
var fail = logging.Fail

// ParseBool parses a boolean variable value. ok is false if the text is not one of
// the accepted forms.
func ParseBool(value string) (parsed bool, ok bool) {
	switch value {
	case "0", "n", "no", "off", "false":
		return false, true
	case "1", "y", "yes", "on", "true":
		return true, true
	}
	return false, false
}

func lookup(name string) *definition {
	i := slices.IndexFunc(definitions, func(d definition) bool { return d.name == name })
	if i < 0 {
		return nil
	}
	return &definitions[i]
}

func (d *definition) set(value string) {
	switch d.kind {
	case kindBool:
		parsed, ok := ParseBool(value)
		if !ok {
			fail("Invalid boolean.", logging.String("var", d.name), logging.String("value", value))
			return
		}
		*d.boolValue = parsed
	case kindString:
		*d.stringValue = value
	case kindSize:
		var size datasize.ByteSize
		if err := size.UnmarshalText([]byte(value)); err != nil {
			fail("Invalid size.", logging.String("var", d.name), logging.String("value", value))
			return
		}
		*d.sizeValue = size
	}
}

// ParseArguments applies the program's command-line arguments, each of the form
// Name=value. Malformed arguments and unknown variable names are fatal.
func ParseArguments(args []string) {
	for _, arg := range args {
		name, value, found := cutAssignment(arg)
		if !found {
			fail("Invalid command-line argument syntax.", logging.String("argument", arg))
			continue
		}
		d := lookup(name)
		if d == nil {
			fail("Command-line contains a value for an unknown variable.", logging.String("name", name))
			continue
		}
		d.set(value)
	}
}

func cutAssignment(arg string) (name string, value string, found bool) {
	for i := 0; i < len(arg); i++ {
		if arg[i] == '=' {
			return arg[:i], arg[i+1:], true
		}
	}
	return "", "", false
}
