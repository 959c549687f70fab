// Package textbuf provides automatically growable text buffers for building log output.
//
// A Buffer may start on caller-supplied preallocated storage, typically a local array,
// and switches to dynamically allocated storage only when it outgrows it. Once promoted
// to dynamic storage a buffer never moves back to the original storage, even after Clear.
package textbuf

import (
	"strconv"

	"github.com/glitchworks/gldemo/util"
)

// Worst-case byte counts for numeric appends. strconv append primitives cannot report
// insufficient space, so space is reserved up front instead of format-and-retry.
const (
	maxIntLen   = 20 // -9223372036854775808
	maxUintLen  = 20 // 18446744073709551615
	maxFloatLen = 32 // shortest 'g' form plus margin
	maxBoolLen  = 5  // "false"
)

// Buffer is an automatically growable byte buffer.
//
// The zero value is an empty buffer with no storage.
type Buffer struct {
	data    []byte // backing storage, len(data) is the capacity
	pos     int    // amount written
	dynamic bool   // whether data was allocated by the buffer itself
}

// NewBuffer creates a buffer on the given preallocated storage. The storage is used
// until the buffer grows beyond its capacity, at which point new memory is allocated.
func NewBuffer(storage []byte) *Buffer {
	return &Buffer{data: storage[:cap(storage)]}
}

// Len returns the amount written.
func (b *Buffer) Len() int { return b.pos }

// Avail returns the amount of space available without growing.
func (b *Buffer) Avail() int { return len(b.data) - b.pos }

// Dynamic reports whether the buffer has been promoted to its own allocated storage.
// Promotion is permanent; a promoted buffer never returns to the original storage.
func (b *Buffer) Dynamic() bool { return b.dynamic }

// Contents returns a view of the data written to the buffer, valid until the next append.
func (b *Buffer) Contents() []byte { return b.data[:b.pos] }

// String returns the written data as a string sharing the buffer's storage.
// The string is only valid until the next append or Clear.
func (b *Buffer) String() util.MutableString { return util.StringFromBytes(b.data[:b.pos]) }

// Clear empties the buffer but does not release storage.
func (b *Buffer) Clear() { b.pos = 0 }

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(c byte) {
	if b.pos == len(b.data) {
		b.Grow()
	}
	b.data[b.pos] = c
	b.pos++
}

// Append appends raw bytes.
func (b *Buffer) Append(data []byte) {
	b.Reserve(len(data))
	b.pos += copy(b.data[b.pos:], data)
}

// AppendString appends a string.
func (b *Buffer) AppendString(str string) {
	b.Reserve(len(str))
	b.pos += copy(b.data[b.pos:], str)
}

// AppendInt appends a signed number in decimal.
func (b *Buffer) AppendInt(value int64) {
	b.Reserve(maxIntLen)
	b.pos += len(strconv.AppendInt(b.scratch(), value, 10))
}

// AppendUint appends an unsigned number in decimal.
func (b *Buffer) AppendUint(value uint64) {
	b.Reserve(maxUintLen)
	b.pos += len(strconv.AppendUint(b.scratch(), value, 10))
}

// AppendFloat appends a floating-point number in its shortest form.
func (b *Buffer) AppendFloat(value float64) {
	b.Reserve(maxFloatLen)
	b.pos += len(strconv.AppendFloat(b.scratch(), value, 'g', -1, 64))
}

// AppendBool appends "true" or "false".
func (b *Buffer) AppendBool(value bool) {
	b.Reserve(maxBoolLen)
	b.pos += len(strconv.AppendBool(b.scratch(), value))
}

// scratch returns an empty slice over the reserved region, capacity-capped so appends
// by strconv cannot reallocate past the buffer.
func (b *Buffer) scratch() []byte {
	return b.data[b.pos:b.pos:len(b.data)]
}

// Grow increases the amount of available space to write.
func (b *Buffer) Grow() {
	b.reallocate(util.GrowSize(len(b.data)))
}

// Reserve ensures there is space for writing the given number of bytes.
func (b *Buffer) Reserve(size int) {
	minimum := b.pos + size
	if len(b.data) < minimum {
		b.reallocate(util.GrowSizeMinimum(len(b.data), minimum))
	}
}

func (b *Buffer) reallocate(newCapacity int) {
	newData := make([]byte, newCapacity)
	copy(newData, b.data[:b.pos])
	b.data = newData
	b.dynamic = true
}
