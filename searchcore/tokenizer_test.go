package searchcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitIntoWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  []string
	}{
		{"simple", "cat in the city", []string{"cat", "in", "the", "city"}},
		{"collapses runs", "cat   dog", []string{"cat", "dog"}},
		{"leading and trailing spaces", "  cat dog  ", []string{"cat", "dog"}},
		{"empty", "", nil},
		{"all spaces", "   ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitIntoWords(tt.in)
			if tt.out == nil {
				assert.Empty(t, got)
			} else {
				assert.Equal(t, tt.out, got)
			}
		})
	}
}

func TestIsValidWord(t *testing.T) {
	assert.True(t, IsValidWord("cat"))
	assert.True(t, IsValidWord(""))
	assert.False(t, IsValidWord("ca\tt"))
	assert.False(t, IsValidWord(string([]byte{0x07})))
}
