package id

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomUnique(t *testing.T) {
	gen := Random{}
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		got := gen.NewID()
		assert.False(t, seen[got], "duplicate ID: %s", got)
		seen[got] = true
	}
}

func TestRandomURLSafe(t *testing.T) {
	gen := Random{}
	got := gen.NewID()
	assert.NotEmpty(t, got)
	assert.False(t, strings.ContainsAny(got, "/?#%&+ -"), "ID not URL-safe: %s", got)
}

func TestSequence(t *testing.T) {
	gen := &Sequence{}
	assert.Equal(t, "id-1", gen.NewID())
	assert.Equal(t, "id-2", gen.NewID())
	assert.Equal(t, "id-3", gen.NewID())
}
