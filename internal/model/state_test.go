package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"120.50", "120.5"},
		{" 42 ", "42"},
		{"-3", "-3"},
		{"", "0"},
		{"abc", "0"},
		{"12abc", "0"},
	}
	for _, tt := range tests {
		got := CoerceAmount(tt.input)
		assert.Equal(t, tt.want, got.String(), "input: %q", tt.input)
	}
}

func TestValidMonthKey(t *testing.T) {
	assert.True(t, ValidMonthKey("2023-05"))
	assert.True(t, ValidMonthKey("2099-12"))
	assert.False(t, ValidMonthKey("2023-13"))
	assert.False(t, ValidMonthKey("2023-5"))
	assert.False(t, ValidMonthKey("May 2023"))
	assert.False(t, ValidMonthKey(""))
}

func TestDefaultState(t *testing.T) {
	s := DefaultState()
	assert.True(t, ValidMonthKey(s.Month))
	assert.Contains(t, s.Months, s.Month)
	assert.Equal(t, "100", s.Folders.Sum().String())
	assert.Empty(t, s.DebtPlan)
}

func TestFolderKnown(t *testing.T) {
	for _, f := range AllFolders {
		assert.True(t, f.Known())
	}
	assert.False(t, Folder("").Known())
	assert.False(t, Folder("travel").Known())
}
