package textbuf

import (
	"github.com/glitchworks/gldemo/unicodec"
	"github.com/glitchworks/gldemo/util"
)

// WideBuffer is an automatically growable buffer of UTF-16 code units. This has
// reduced functionality compared to Buffer. The intention is that strings are built
// in UTF-8 and converted to the platform's wide encoding at the last moment.
type WideBuffer struct {
	data    []uint16
	pos     int
	dynamic bool
}

// NewWideBuffer creates a wide buffer on the given preallocated storage. The storage
// is used until the buffer grows beyond its capacity.
func NewWideBuffer(storage []uint16) *WideBuffer {
	return &WideBuffer{data: storage[:cap(storage)]}
}

// Len returns the number of code units written.
func (b *WideBuffer) Len() int { return b.pos }

// Avail returns the number of code units available without growing.
func (b *WideBuffer) Avail() int { return len(b.data) - b.pos }

// Dynamic reports whether the buffer has been promoted to its own allocated storage.
func (b *WideBuffer) Dynamic() bool { return b.dynamic }

// Contents returns a view of the code units written, valid until the next append.
func (b *WideBuffer) Contents() []uint16 { return b.data[:b.pos] }

// Clear empties the buffer but does not release storage.
func (b *WideBuffer) Clear() { b.pos = 0 }

// AppendUTF8 converts a UTF-8 string into UTF-16 and appends it. Bytes that do not
// form valid UTF-8 become replacement characters, one per byte.
func (b *WideBuffer) AppendUTF8(data []byte) {
	if len(data) == 0 {
		return
	}
	// Check for ASCII fast path.
	bits := byte(0)
	for _, c := range data {
		bits |= c
	}
	if bits&0x80 == 0 {
		b.Reserve(len(data))
		for _, c := range data {
			b.data[b.pos] = uint16(c)
			b.pos++
		}
		return
	}
	for pos := 0; pos < len(data); {
		if b.Avail() < 2 {
			b.Grow()
		}
		ch, size, _ := unicodec.DecodeUTF8(data[pos:])
		pos += size
		if ch < 0x10000 {
			b.data[b.pos] = uint16(ch)
			b.pos++
		} else {
			high, low := unicodec.EncodeSurrogatePair(ch)
			b.data[b.pos] = high
			b.data[b.pos+1] = low
			b.pos += 2
		}
	}
}

// AppendUTF16 appends raw UTF-16 code units.
func (b *WideBuffer) AppendUTF16(data []uint16) {
	b.Reserve(len(data))
	b.pos += copy(b.data[b.pos:], data)
}

// Grow increases the amount of available space to write.
func (b *WideBuffer) Grow() {
	b.reallocate(util.GrowSize(len(b.data)))
}

// Reserve ensures there is space for writing the given number of code units.
func (b *WideBuffer) Reserve(size int) {
	minimum := b.pos + size
	if len(b.data) < minimum {
		b.reallocate(util.GrowSizeMinimum(len(b.data), minimum))
	}
}

func (b *WideBuffer) reallocate(newCapacity int) {
	newData := make([]uint16, newCapacity)
	copy(newData, b.data[:b.pos])
	b.data = newData
	b.dynamic = true
}
