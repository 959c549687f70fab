// Package unicodec provides low-level UTF-8 and UTF-16 conversion primitives for text buffers.
//
// Unlike unicode/utf8 in the standard library, DecodeUTF8 resynchronizes after exactly one byte
// on any malformed sequence, so error recovery cost is bounded and valid data hidden inside a
// malformed run is never skipped.
package unicodec

// ReplacementChar is substituted for any undecodable input.
const ReplacementChar rune = 0xFFFD

// MaxUTF8Len is the longest UTF-8 encoding of a single code point.
const MaxUTF8Len = 4

// IsSurrogate reports whether ch is in the UTF-16 surrogate range.
func IsSurrogate(ch rune) bool {
	return 0xd800 <= ch && ch < 0xe000
}

// IsSurrogateHigh reports whether ch is a high (leading) surrogate.
func IsSurrogateHigh(ch rune) bool {
	return 0xd800 <= ch && ch < 0xdc00
}

// IsSurrogateLow reports whether ch is a low (trailing) surrogate.
func IsSurrogateLow(ch rune) bool {
	return 0xdc00 <= ch && ch < 0xe000
}

// DecodeSurrogatePair combines a high and a low surrogate into one code point.
// Both arguments must satisfy their respective predicates.
func DecodeSurrogatePair(high uint16, low uint16) rune {
	const offset = (0xd800 << 10) + 0xdc00 - 0x10000
	return (rune(high) << 10) + rune(low) - offset
}

// EncodeSurrogatePair splits a code point >= U+10000 into a surrogate pair.
func EncodeSurrogatePair(ch rune) (high uint16, low uint16) {
	ch -= 0x10000
	return uint16(0xd800 + (ch >> 10)), uint16(0xdc00 + (ch & 0x3ff))
}

// DecodeUTF8 reads one UTF-8 sequence from the start of b.
//
// On success it returns the code point, the number of bytes consumed, and ok=true.
// On any malformed input (empty slice, truncated sequence, invalid continuation byte,
// overlong encoding, encoded surrogate, or out-of-range code point) it returns
// (ReplacementChar, 1, false), consuming a single byte; except for the empty slice,
// where size is 0. The caller may resume decoding at b[size:].
func DecodeUTF8(b []byte) (ch rune, size int, ok bool) {
	return decodeUTF8(b)
}

// DecodeUTF8String is DecodeUTF8 over a string, avoiding a []byte conversion.
func DecodeUTF8String(s string) (ch rune, size int, ok bool) {
	return decodeUTF8(s)
}

func decodeUTF8[T []byte | string](b T) (ch rune, size int, ok bool) {
	if len(b) == 0 {
		return ReplacementChar, 0, false
	}
	uc := uint32(b[0])
	if uc < 0x80 {
		// 1-byte sequence.
		return rune(uc), 1, true
	}

	var n int
	var ucMin uint32
	switch {
	case uc < 0xc0:
		// Continuation byte with no lead byte.
		return ReplacementChar, 1, false
	case uc < 0xe0:
		uc &= 0x1f
		ucMin = 0x80
		n = 2
	case uc < 0xf0:
		uc &= 0x0f
		ucMin = 0x800
		n = 3
	case uc < 0xf8:
		uc &= 0x07
		ucMin = 0x10000
		n = 4
	default:
		return ReplacementChar, 1, false
	}

	if len(b) < n {
		return ReplacementChar, 1, false
	}
	for i := 1; i < n; i++ {
		cb := uint32(b[i])
		if cb&0xc0 != 0x80 {
			return ReplacementChar, 1, false
		}
		uc = (uc << 6) | (cb & 0x3f)
	}
	if uc < ucMin || IsSurrogate(rune(uc)) || uc > 0x10FFFF {
		return ReplacementChar, 1, false
	}
	return rune(uc), n, true
}

// EncodeUTF8 writes the UTF-8 encoding of ch to the start of dst and returns the
// number of bytes written. dst must have room for MaxUTF8Len bytes.
func EncodeUTF8(dst []byte, ch rune) int {
	uc := uint32(ch)
	switch {
	case uc < 0x80:
		dst[0] = byte(uc)
		return 1
	case uc < 0x800:
		dst[0] = byte(uc>>6) | 0xc0
		dst[1] = byte(uc&0x3f) | 0x80
		return 2
	case uc < 0x10000:
		dst[0] = byte(uc>>12) | 0xe0
		dst[1] = byte(uc>>6)&0x3f | 0x80
		dst[2] = byte(uc&0x3f) | 0x80
		return 3
	default:
		dst[0] = byte(uc>>18) | 0xf0
		dst[1] = byte(uc>>12)&0x3f | 0x80
		dst[2] = byte(uc>>6)&0x3f | 0x80
		dst[3] = byte(uc&0x3f) | 0x80
		return 4
	}
}
