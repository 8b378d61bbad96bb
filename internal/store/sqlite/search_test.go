package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertWebsearchToFTS5(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple term",
			input:    "thorin",
			expected: "thorin",
		},
		{
			name:     "multiple terms",
			input:    "iron thorin",
			expected: "iron AND thorin",
		},
		{
			name:     "explicit AND",
			input:    "thorin AND oakenshield",
			expected: "thorin AND oakenshield",
		},
		{
			name:     "explicit OR",
			input:    "thorin OR oakenshield",
			expected: "thorin OR oakenshield",
		},
		{
			name:     "negation",
			input:    "thorin -moria",
			expected: "thorin AND NOT moria",
		},
		{
			name:     "phrase",
			input:    `"iron thorin"`,
			expected: `"iron thorin"`,
		},
		{
			name:     "phrase with other term",
			input:    `"iron thorin" hall`,
			expected: `"iron thorin" AND hall`,
		},
		{
			name:     "prefix search",
			input:    "thorin*",
			expected: "thorin*",
		},
		{
			name:     "complex query",
			input:    `"iron thorin" -moria hall OR gate`,
			expected: `"iron thorin" AND NOT moria AND hall OR gate`,
		},
		{
			name:     "empty phrase dropped",
			input:    `"" thorin`,
			expected: "thorin",
		},
		{
			name:     "NOT operator",
			input:    "thorin NOT moria",
			expected: "thorin NOT moria",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, convertWebsearchToFTS5(tt.input))
		})
	}
}
