package textbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWideBufferASCIIFastPath(t *testing.T) {
	var storage [16]uint16
	buf := NewWideBuffer(storage[:])
	buf.AppendUTF8([]byte("hello"))
	assert.Equal(t, []uint16{'h', 'e', 'l', 'l', 'o'}, buf.Contents())
	assert.False(t, buf.Dynamic())
}

func TestWideBufferUTF8(t *testing.T) {
	var buf WideBuffer
	buf.AppendUTF8([]byte("aéあ\U0001f4d8"))
	assert.Equal(t, []uint16{'a', 0xe9, 0x3042, 0xd83d, 0xdcd8}, buf.Contents())
}

func TestWideBufferMalformedUTF8(t *testing.T) {
	var buf WideBuffer
	buf.AppendUTF8([]byte("a\xc3(b"))
	assert.Equal(t, []uint16{'a', 0xfffd, '(', 'b'}, buf.Contents())
}

func TestWideBufferAppendUTF16(t *testing.T) {
	var buf WideBuffer
	buf.AppendUTF16([]uint16{1, 2, 3})
	buf.AppendUTF16([]uint16{4})
	assert.Equal(t, []uint16{1, 2, 3, 4}, buf.Contents())
	assert.Equal(t, 4, buf.Len())
}

func TestWideBufferPromotion(t *testing.T) {
	var storage [2]uint16
	buf := NewWideBuffer(storage[:])
	buf.AppendUTF16([]uint16{1, 2})
	assert.False(t, buf.Dynamic())
	buf.AppendUTF16([]uint16{3})
	assert.True(t, buf.Dynamic())
	assert.Equal(t, []uint16{1, 2, 3}, buf.Contents())

	buf.Clear()
	assert.True(t, buf.Dynamic(), "promotion is permanent")
}

func TestWideBufferReserve(t *testing.T) {
	var buf WideBuffer
	buf.Reserve(50)
	assert.GreaterOrEqual(t, buf.Avail(), 50)
}
