package typeid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePrefix(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		wantErr error
	}{
		{"empty", "", nil},
		{"single letter", "a", nil},
		{"simple", "user", nil},
		{"interior underscore", "pull_request", nil},
		{"consecutive underscores", "double__underscore", nil},
		{"many segments", "a_b_c_d", nil},
		{"max length", strings.Repeat("a", 63), nil},
		{"too long", strings.Repeat("a", 64), ErrPrefixTooLong},
		{"way too long", strings.Repeat("a", 200), ErrPrefixTooLong},
		{"leading underscore", "_user", ErrInvalidPrefixFormat},
		{"trailing underscore", "user_", ErrInvalidPrefixFormat},
		{"only underscore", "_", ErrInvalidPrefixFormat},
		{"digit", "user1", ErrInvalidPrefixFormat},
		{"interior digit", "us3r", ErrInvalidPrefixFormat},
		{"uppercase", "User", ErrInvalidPrefixFormat},
		{"hyphen", "user-name", ErrInvalidPrefixFormat},
		{"dot", "user.name", ErrInvalidPrefixFormat},
		{"space", "user name", ErrInvalidPrefixFormat},
		{"non-ascii", "usér", ErrInvalidPrefixFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePrefix(tt.prefix)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidatePrefix_TooLongBeforeFormat(t *testing.T) {
	// Length is checked before the grammar, so an overlong prefix full of
	// illegal characters still reports PrefixTooLong.
	err := validatePrefix(strings.Repeat("9", 64))
	assert.ErrorIs(t, err, ErrPrefixTooLong)
}

func TestNew_RejectsBadPrefix(t *testing.T) {
	_, err := New("Invalid")
	assert.ErrorIs(t, err, ErrInvalidPrefixFormat)

	_, err = New(strings.Repeat("a", 64))
	assert.ErrorIs(t, err, ErrPrefixTooLong)
}
