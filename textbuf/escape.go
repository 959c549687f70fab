package textbuf

import (
	"github.com/glitchworks/gldemo/unicodec"
)

// escapeTable maps an ASCII byte to its escape treatment: 0 for literal output,
// 'x' for a \xHH hex escape, or the character following the backslash otherwise.
var escapeTable = [128]byte{
	'\t': 't',
	'\n': 'n',
	'\r': 'r',
	'"':  '"',
	'\\': '\\',
}

func init() {
	for ch := 0; ch < 32; ch++ {
		if escapeTable[ch] == 0 {
			escapeTable[ch] = 'x'
		}
	}
	escapeTable[127] = 'x'
}

const hexDigits = "0123456789abcdef"

// Escaped output may expand one input unit to a \U00HHHHHH escape.
const escapedMaxLen = 10

func (b *Buffer) appendHexEscape8(ch uint32) {
	p := b.data[b.pos:]
	p[0] = '\\'
	p[1] = 'x'
	p[2] = hexDigits[(ch>>4)&15]
	p[3] = hexDigits[ch&15]
	b.pos += 4
}

func (b *Buffer) appendHexEscape16(ch uint32) {
	p := b.data[b.pos:]
	p[0] = '\\'
	p[1] = 'u'
	p[2] = hexDigits[(ch>>12)&15]
	p[3] = hexDigits[(ch>>8)&15]
	p[4] = hexDigits[(ch>>4)&15]
	p[5] = hexDigits[ch&15]
	b.pos += 6
}

func (b *Buffer) appendHexEscape32(ch uint32) {
	p := b.data[b.pos:]
	p[0] = '\\'
	p[1] = 'U'
	p[2] = '0'
	p[3] = '0'
	p[4] = hexDigits[(ch>>20)&15]
	p[5] = hexDigits[(ch>>16)&15]
	p[6] = hexDigits[(ch>>12)&15]
	p[7] = hexDigits[(ch>>8)&15]
	p[8] = hexDigits[(ch>>4)&15]
	p[9] = hexDigits[ch&15]
	b.pos += 10
}

// appendASCIIEscape writes one byte < 0x80 according to the escape table.
// The caller must have reserved escapedMaxLen bytes.
func (b *Buffer) appendASCIIEscape(ch byte) {
	escape := escapeTable[ch]
	switch escape {
	case 0:
		b.data[b.pos] = ch
		b.pos++
	case 'x':
		b.appendHexEscape8(uint32(ch))
	default:
		b.data[b.pos] = '\\'
		b.data[b.pos+1] = escape
		b.pos += 2
	}
}

// AppendQuoted appends a string, enclosed in quotes, with characters escaped.
func (b *Buffer) AppendQuoted(str string) {
	b.AppendByte('"')
	b.AppendEscaped(str)
	b.AppendByte('"')
}

// AppendEscaped appends a string with the characters escaped as necessary.
// Non-ASCII code points become \uHHHH or \U00HHHHHH escapes; bytes that do not
// form valid UTF-8 each become a single \xHH escape.
func (b *Buffer) AppendEscaped(str string) {
	for pos := 0; pos < len(str); {
		if b.Avail() < escapedMaxLen {
			b.Grow()
		}
		ch := str[pos]
		if ch < 0x80 {
			pos++
			b.appendASCIIEscape(ch)
			continue
		}
		decoded, size, ok := unicodec.DecodeUTF8String(str[pos:])
		if ok {
			pos += size
			if decoded < 0x10000 {
				b.appendHexEscape16(uint32(decoded))
			} else {
				b.appendHexEscape32(uint32(decoded))
			}
		} else {
			pos++
			b.appendHexEscape8(uint32(ch))
		}
	}
}

// AppendWide appends a UTF-16 string, converting it to UTF-8. Unpaired surrogates
// are replaced with the replacement character.
func (b *Buffer) AppendWide(units []uint16) {
	for pos := 0; pos < len(units); {
		if b.Avail() < unicodec.MaxUTF8Len {
			b.Grow()
		}
		ch := rune(units[pos])
		pos++
		if ch < 0x80 {
			b.data[b.pos] = byte(ch)
			b.pos++
			continue
		}
		if unicodec.IsSurrogate(ch) {
			if unicodec.IsSurrogateHigh(ch) && pos < len(units) && unicodec.IsSurrogateLow(rune(units[pos])) {
				ch = unicodec.DecodeSurrogatePair(uint16(ch), units[pos])
				pos++
			} else {
				ch = unicodec.ReplacementChar
			}
		}
		b.pos += unicodec.EncodeUTF8(b.data[b.pos:], ch)
	}
}

// AppendWideQuoted appends a UTF-16 string, enclosed in quotes, with characters escaped.
func (b *Buffer) AppendWideQuoted(units []uint16) {
	b.AppendByte('"')
	b.AppendWideEscaped(units)
	b.AppendByte('"')
}

// AppendWideEscaped appends a UTF-16 string with the characters escaped as necessary.
// An unpaired surrogate becomes a \uHHHH escape for that single unit.
func (b *Buffer) AppendWideEscaped(units []uint16) {
	for pos := 0; pos < len(units); {
		if b.Avail() < escapedMaxLen {
			b.Grow()
		}
		ch := rune(units[pos])
		pos++
		if ch < 0x80 {
			b.appendASCIIEscape(byte(ch))
			continue
		}
		if unicodec.IsSurrogate(ch) {
			if unicodec.IsSurrogateHigh(ch) && pos < len(units) && unicodec.IsSurrogateLow(rune(units[pos])) {
				b.appendHexEscape32(uint32(unicodec.DecodeSurrogatePair(uint16(ch), units[pos])))
				pos++
			} else {
				b.appendHexEscape16(uint32(ch))
			}
		} else {
			b.appendHexEscape16(uint32(ch))
		}
	}
}
