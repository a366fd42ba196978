package boolexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVariables(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input    string
		expected []string
	}{
		{"a and b", []string{"a", "b"}},
		{"(b or a) and c", []string{"a", "b", "c"}},
		{"a and a or a", []string{"a"}},
		{"not x or (y and z)", []string{"x", "y", "z"}},
		{"b and B", []string{"B", "b"}},
		{"a and True", []string{"a"}},
		{"True", nil},
		{"and or not", nil},
		{"", nil},
		{"ab and cd", nil},
		{"a1 or b", []string{"b"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, ExtractVariables(tt.input))
		})
	}
}
