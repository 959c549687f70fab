package logging

import (
	"runtime"
	"strings"

	"github.com/glitchworks/gldemo/textbuf"
)

// quoteContext selects the quoting rules for a rendered value.
type quoteContext int

const (
	contextInline quoteContext = iota // value appears inline, with other content
	contextLine                       // value appears on its own line
)

// buildRootPrefix is the source path prefix shared by files compiled into this
// module, derived from this file's own path. Locations under it are rendered
// relative to the module root.
var buildRootPrefix = func() string {
	const thisFile = "logging/render.go"
	_, file, _, ok := runtime.Caller(0)
	if !ok || !strings.HasSuffix(file, thisFile) {
		return ""
	}
	return file[:len(file)-len(thisFile)]
}()

// needsQuotes reports whether a string value must be quoted when rendered.
func needsQuotes(str string, context quoteContext) bool {
	if len(str) == 0 {
		return true
	}
	minCh := byte(33)
	if context == contextLine {
		if str[0] == ' ' || str[len(str)-1] == ' ' {
			return true
		}
		minCh = 32
	}
	for i := 0; i < len(str); i++ {
		ch := str[i]
		if ch < minCh || 126 < ch || ch == '"' || ch == '\\' {
			return true
		}
	}
	return false
}

// needsQuotesWide is needsQuotes over UTF-16 code units.
func needsQuotesWide(units []uint16, context quoteContext) bool {
	if len(units) == 0 {
		return true
	}
	minCh := uint16(33)
	if context == contextLine {
		if units[0] == ' ' || units[len(units)-1] == ' ' {
			return true
		}
		minCh = 32
	}
	for _, ch := range units {
		if ch < minCh || 126 < ch || ch == '"' || ch == '\\' {
			return true
		}
	}
	return false
}

func appendFileName(out *textbuf.Buffer, file string) {
	if buildRootPrefix == "" || len(file) < len(buildRootPrefix) ||
		file[:len(buildRootPrefix)] != buildRootPrefix {
		out.AppendString(file)
		return
	}
	for i := len(buildRootPrefix); i < len(file); i++ {
		c := file[i]
		if c == '\\' {
			c = '/'
		}
		out.AppendByte(c)
	}
}

func appendLocation(out *textbuf.Buffer, location Location) {
	appendFileName(out, location.File)
	out.AppendByte(':')
	out.AppendInt(int64(location.Line))
	out.AppendString(" (")
	out.AppendString(location.Function)
	out.AppendByte(')')
}

func appendValue(out *textbuf.Buffer, value Value, context quoteContext) {
	switch value.Kind() {
	case KindNull:
		out.AppendString("(null)")
	case KindInt:
		out.AppendInt(value.IntValue())
	case KindUint:
		out.AppendUint(value.UintValue())
	case KindFloat:
		out.AppendFloat(value.FloatValue())
	case KindBool:
		out.AppendBool(value.BoolValue())
	case KindString:
		str := value.StringValue()
		if needsQuotes(str, context) {
			out.AppendQuoted(str)
		} else {
			out.AppendString(str)
		}
	case KindWideString:
		units := value.WideStringValue()
		if needsQuotesWide(units, context) {
			out.AppendWideQuoted(units)
		} else {
			out.AppendWide(units)
		}
	}
}

// WriteLine renders a record as a single line, for console output.
func WriteLine(buffer *textbuf.Buffer, record *Record, useColor bool, useEmoji bool) {
	info := record.Level.info()
	if useEmoji {
		buffer.AppendString(info.emoji)
		buffer.AppendByte(' ')
	}
	if useColor && info.color != "" {
		buffer.AppendString(info.color)
	}
	buffer.AppendString(info.name)
	if useColor && info.color != "" {
		buffer.AppendString(colorReset)
	}
	buffer.AppendByte(' ')
	if !record.Location.IsEmpty() {
		appendLocation(buffer, record.Location)
		buffer.AppendString(": ")
	}
	buffer.AppendString(record.Message)
	for _, attr := range record.Attrs {
		buffer.AppendByte(' ')
		buffer.AppendString(attr.Name)
		buffer.AppendByte('=')
		appendValue(buffer, attr.Value, contextInline)
	}
	buffer.AppendByte('\n')
}

// WriteBlock renders a record as blank-line-separated paragraphs, for fatal
// error display: the message, then one attribute per paragraph, then the location.
func WriteBlock(buffer *textbuf.Buffer, record *Record) {
	buffer.AppendString(record.Message)
	buffer.AppendByte('\n')
	for _, attr := range record.Attrs {
		buffer.AppendByte('\n')
		buffer.AppendString(attr.Name)
		buffer.AppendString(": ")
		appendValue(buffer, attr.Value, contextLine)
		buffer.AppendByte('\n')
	}
	if !record.Location.IsEmpty() {
		buffer.AppendString("\nlocation: ")
		appendLocation(buffer, record.Location)
	}
}
