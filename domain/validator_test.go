package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"sockchat/errors"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		valid    bool
	}{
		{name: "simple name", username: "alice", valid: true},
		{name: "unicode name", username: "Zoë", valid: true},
		{name: "max length", username: strings.Repeat("a", 32), valid: true},
		{name: "empty", username: "", valid: false},
		{name: "oversized", username: strings.Repeat("a", 33), valid: false},
		{name: "control character", username: "ali\x00ce", valid: false},
		{name: "newline", username: "ali\nce", valid: false},
		// Key separators: '|' joins conversation pairs and ':' delimits
		// key segments, so either would let one user address another
		// pair's key range.
		{name: "pipe separator", username: "a|b", valid: false},
		{name: "colon separator", username: "a:b", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)

			err := ValidateUsername(tt.username)

			if tt.valid {
				req.NoError(err)
			} else {
				req.ErrorIs(err, errors.ErrInvalidUsername)
			}
		})
	}
}
