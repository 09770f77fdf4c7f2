package emoji

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReplacer_Emojify(t *testing.T) {
	req := require.New(t)
	replacer, err := NewReplacer()
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Single shorthand",
			input:    "nice one :fire:",
			expected: "nice one 🔥",
		},
		{
			name:     "Multiple shorthands in one message",
			input:    ":tada: shipped :rocket:",
			expected: "🎉 shipped 🚀",
		},
		{
			name:     "Adjacent shorthands",
			input:    ":fire::100:",
			expected: "🔥💯",
		},
		{
			name:     "Unknown alias stays literal",
			input:    "what is :quux:?",
			expected: "what is :quux:?",
		},
		{
			name:     "No shorthand at all",
			input:    "plain text",
			expected: "plain text",
		},
		{
			name:     "Colon without closing pair",
			input:    "ratio 1:100 and :fire",
			expected: "ratio 1:100 and :fire",
		},
		{
			name:     "Empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, replacer.Emojify(tt.input))
		})
	}
}
