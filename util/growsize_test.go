package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrowSize(t *testing.T) {
	assert.Equal(t, 24, GrowSize(0))
	assert.Equal(t, 36, GrowSize(8))
	assert.Equal(t, 408, GrowSize(256))

	// strictly increasing, so repeated growth always terminates
	prevGap := 0
	for size := 0; size < 1<<20; size = GrowSize(size) {
		next := GrowSize(size)
		assert.Greater(t, next, size)
		assert.GreaterOrEqual(t, next-size, prevGap, "gap must be monotonic at size %d", size)
		prevGap = next - size
	}
}

func TestGrowSizeMinimum(t *testing.T) {
	assert.Equal(t, 24, GrowSizeMinimum(0, 10))
	assert.Equal(t, 1000, GrowSizeMinimum(0, 1000))
	assert.Equal(t, 408, GrowSizeMinimum(256, 300))
}
