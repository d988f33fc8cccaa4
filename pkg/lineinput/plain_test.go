package lineinput

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainReadLine(t *testing.T) {
	var out bytes.Buffer
	p := NewPlain(strings.NewReader("run_\n\n  notes \nlast"), &out)

	line, err := p.ReadLine("> ", "")
	require.NoError(t, err)
	assert.Equal(t, "run_", line)

	line, err = p.ReadLine("> ", "notes.map")
	require.NoError(t, err)
	assert.Equal(t, "notes.map", line, "empty answer accepts the seed")
	assert.Contains(t, out.String(), "> [notes.map] ")

	line, err = p.ReadLine("> ", "")
	require.NoError(t, err)
	assert.Equal(t, "notes", line)

	line, err = p.ReadLine("> ", "")
	require.NoError(t, err)
	assert.Equal(t, "last", line, "final line without newline is still returned")

	_, err = p.ReadLine("> ", "")
	assert.True(t, errors.Is(err, io.EOF))
	assert.True(t, IsEOF(err))
}

func TestSanitizeConsoleInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc\n", "abc"},
		{"\x1b[Aabc\r\n", "abc"},
		{"^[[1;5Cabc", "abc"},
		{"a\tb", "ab"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeConsoleInput(tt.in), "input %q", tt.in)
	}
}

func TestPlainHistoryIsNoop(t *testing.T) {
	p := NewPlain(strings.NewReader(""), io.Discard)
	assert.NoError(t, p.AddHistory("x"))
	p.ClearHistory()
	assert.NoError(t, p.Close())
}
