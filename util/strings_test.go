package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringFromBytes(t *testing.T) {
	orig := []byte("hello")
	view := StringFromBytes(orig)
	assert.Equal(t, "hello", view)

	// the string shares the backing bytes
	orig[0] = 'H'
	assert.Equal(t, "Hello", view)
}
