package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCount(t *testing.T) {
	tests := []struct {
		want string
		n    int
	}{
		{n: 0, want: "0"},
		{n: 999, want: "999"},
		{n: 2315, want: "2,315"},
		{n: 1234567, want: "1,234,567"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCount(tt.n))
		})
	}
}

func TestFormatMessages(t *testing.T) {
	assert.Contains(t, FormatError("missing"), ErrorIcon)
	assert.Contains(t, FormatWarning("odd"), "odd")
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgress(&buf, 3, "Grouping paths")

	p.Step()
	p.Step()
	p.Step()
	p.Finish()
	assert.Contains(t, buf.String(), "Grouping paths")
}
