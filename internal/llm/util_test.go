package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text untouched",
			input:    "just some text",
			expected: "just some text",
		},
		{
			name:     "fenced JSON with language tag",
			input:    "```json\n{\"a\": 1}\n```",
			expected: "{\"a\": 1}",
		},
		{
			name:     "fenced without language tag",
			input:    "```\n{\"a\": 1}\n```",
			expected: "{\"a\": 1}",
		},
		{
			name:     "surrounding whitespace stripped",
			input:    "  \n```json\n{}\n```\n  ",
			expected: "{}",
		},
		{
			name:     "double-wrapped fences fully peeled",
			input:    "```\n```json\n{\"a\": 1}\n```\n```",
			expected: "{\"a\": 1}",
		},
		{
			name:     "fence markers inside content preserved",
			input:    "prose with ``` in the middle",
			expected: "prose with ``` in the middle",
		},
		{
			name:     "opening fence without closing is untouched",
			input:    "```json\n{\"a\": 1}",
			expected: "```json\n{\"a\": 1}",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"```json\n{\"a\": 1}\n```",
		"plain text",
		"```\n```json\n{}\n```\n```",
	}
	for _, input := range inputs {
		once := Sanitize(input)
		assert.Equal(t, once, Sanitize(once))
	}
}

func TestIsSentinel(t *testing.T) {
	assert.True(t, IsSentinel(SentinelBlocked))
	assert.True(t, IsSentinel(SentinelEmpty))
	assert.True(t, IsSentinel("Error: connection refused"))
	assert.False(t, IsSentinel("A perfectly good resume draft"))
	assert.False(t, IsSentinel(""))
}
