package textbuf

import (
	"strconv"
	"testing"

	"github.com/glitchworks/gldemo/unicodec"
	"github.com/stretchr/testify/assert"
)

// unescape reverses AppendEscaped output, for round-trip checks.
func unescape(t *testing.T, escaped string) string {
	var out []byte
	var tmp [unicodec.MaxUTF8Len]byte
	i := 0
	for i < len(escaped) {
		c := escaped[i]
		if c != '\\' {
			out = append(out, c)
			i++
			continue
		}
		i++
		switch escaped[i] {
		case 't':
			out = append(out, '\t')
			i++
		case 'n':
			out = append(out, '\n')
			i++
		case 'r':
			out = append(out, '\r')
			i++
		case '"':
			out = append(out, '"')
			i++
		case '\\':
			out = append(out, '\\')
			i++
		case 'x':
			v, err := strconv.ParseUint(escaped[i+1:i+3], 16, 8)
			assert.NoError(t, err)
			out = append(out, byte(v))
			i += 3
		case 'u':
			v, err := strconv.ParseUint(escaped[i+1:i+5], 16, 16)
			assert.NoError(t, err)
			out = append(out, tmp[:unicodec.EncodeUTF8(tmp[:], rune(v))]...)
			i += 5
		case 'U':
			v, err := strconv.ParseUint(escaped[i+1:i+9], 16, 32)
			assert.NoError(t, err)
			out = append(out, tmp[:unicodec.EncodeUTF8(tmp[:], rune(v))]...)
			i += 9
		default:
			t.Fatalf("bad escape %q at %d in %q", escaped[i], i, escaped)
		}
	}
	return string(out)
}

func escapeToString(str string) string {
	var buf Buffer
	buf.AppendEscaped(str)
	return string(buf.Contents())
}

func TestAppendEscaped(t *testing.T) {
	for _, c := range []struct {
		input    string
		expected string
	}{
		{"plain", "plain"},
		{"with space", "with space"},
		{"tab\there", `tab\there`},
		{"line\nbreak\r", `line\nbreak\r`},
		{`quote"and\slash`, `quote\"and\\slash`},
		{"bell\x07", `bell\x07`},
		{"\x00\x1f\x7f", `\x00\x1f\x7f`},
		{"caf\u00e9", `caf\u00e9`},
		{"\u3042", `\u3042`},
		{"book \U0001f4d8", `book \U0001f4d8`},
		{"bad \xc3(", `bad \xc3(`},
		{"lone cont \x80", `lone cont \x80`},
		{"C:\\temp\\x.txt", `C:\\temp\\x.txt`},
	} {
		assert.Equal(t, c.expected, escapeToString(c.input), "input %q", c.input)
	}
}

func TestAppendQuoted(t *testing.T) {
	var buf Buffer
	buf.AppendQuoted("say \"hi\"\n")
	assert.Equal(t, `"say \"hi\"\n"`, string(buf.Contents()))
}

func TestAppendEscapedRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"simple",
		"tab\tnewline\ncr\r",
		"quote\" slash\\",
		"caf\u00e9 \u3042 \U0001f4d8",
		"malformed \xc3( \x80 \xf0\x9f\x92 tail",
		"\x00\x01\x02\x7f\xff",
		"C:\\temp\\x.txt",
	}
	for _, input := range inputs {
		escaped := escapeToString(input)
		assert.Equal(t, input, unescape(t, escaped), "escaped form %q", escaped)
	}
}

func TestAppendEscapedGrowth(t *testing.T) {
	// each input byte may expand to a 4-char escape; start from tiny storage
	var storage [4]byte
	buf := NewBuffer(storage[:])
	buf.AppendEscaped("\x01\x02\x03\x04\x05\x06\x07\x08")
	assert.Equal(t, `\x01\x02\x03\x04\x05\x06\x07\x08`, string(buf.Contents()))
}

func TestAppendWide(t *testing.T) {
	var buf Buffer
	buf.AppendWide([]uint16{'h', 'i', ' ', 0x3042, ' ', 0xd83d, 0xdcd8})
	assert.Equal(t, "hi \u3042 \U0001f4d8", string(buf.Contents()))
}

func TestAppendWideUnpairedSurrogate(t *testing.T) {
	// lone high surrogate becomes the replacement character, adjacent data untouched
	var buf Buffer
	buf.AppendWide([]uint16{'a', 0xd83d, 'b'})
	assert.Equal(t, "a\ufffdb", string(buf.Contents()))

	buf.Clear()
	buf.AppendWide([]uint16{0xdcd8, 'x'})
	assert.Equal(t, "\ufffdx", string(buf.Contents()))
}

func TestAppendWideEscaped(t *testing.T) {
	var buf Buffer
	buf.AppendWideEscaped([]uint16{'o', 'k', '\t', 0x3042, 0xd83d, 0xdcd8})
	assert.Equal(t, `ok\t\u3042\U0001f4d8`, string(buf.Contents()))

	// a lone high surrogate is escaped as a single unit, not merged with what follows
	buf.Clear()
	buf.AppendWideEscaped([]uint16{0xd83d, 'z'})
	assert.Equal(t, `\ud83dz`, string(buf.Contents()))
}

func TestAppendWideQuoted(t *testing.T) {
	var buf Buffer
	buf.AppendWideQuoted([]uint16{'a', '"', 'b'})
	assert.Equal(t, `"a\"b"`, string(buf.Contents()))
}
