package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionDefault(t *testing.T) {
	// release builds override this via ldflags; it must never be empty
	assert.NotEmpty(t, version)
}
