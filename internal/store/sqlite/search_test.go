package sqlite

import (
	"testing"
)

func TestConvertWebsearchToFTS5(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple term",
			input:    "expenses",
			expected: "expenses",
		},
		{
			name:     "multiple terms",
			input:    "travel expenses",
			expected: "travel AND expenses",
		},
		{
			name:     "explicit AND",
			input:    "travel AND expenses",
			expected: "travel AND expenses",
		},
		{
			name:     "explicit OR",
			input:    "remote OR hybrid",
			expected: "remote OR hybrid",
		},
		{
			name:     "negation",
			input:    "policy -travel",
			expected: "policy AND NOT travel",
		},
		{
			name:     "phrase",
			input:    `"remote work"`,
			expected: `"remote work"`,
		},
		{
			name:     "phrase with other term",
			input:    `"remote work" policy`,
			expected: `"remote work" AND policy`,
		},
		{
			name:     "prefix search",
			input:    "onboard*",
			expected: "onboard*",
		},
		{
			name:     "complex query",
			input:    `"remote work" -travel policy OR guideline`,
			expected: `"remote work" AND NOT travel AND policy OR guideline`,
		},
		{
			name:     "NOT operator",
			input:    "policy NOT travel",
			expected: "policy NOT travel",
		},
		{
			name:     "bare dash dropped",
			input:    "- expenses",
			expected: "expenses",
		},
		{
			name:     "trailing dash dropped",
			input:    "policy -",
			expected: "policy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := convertWebsearchToFTS5(tt.input)
			if result != tt.expected {
				t.Errorf("convertWebsearchToFTS5(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
