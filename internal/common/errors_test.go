package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserError(t *testing.T) {
	tests := []struct {
		err      error
		name     string
		message  string
		expected string
	}{
		{
			name:     "with wrapped error",
			message:  "slate_t.txt not found",
			err:      ErrInputNotFound,
			expected: "slate_t.txt not found: input file not found",
		},
		{
			name:     "message only",
			message:  "nothing to do",
			expected: "nothing to do",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewUserError(tt.message, tt.err)
			assert.Equal(t, tt.expected, err.Error())
			if tt.err != nil {
				assert.True(t, errors.Is(err, tt.err))
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	wrapped := fmt.Errorf("load: %w", NewUserError("missing input", ErrInputNotFound))

	msg, ok := UserMessage(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "missing input", msg)

	_, ok = UserMessage(errors.New("plain"))
	assert.False(t, ok)
}
