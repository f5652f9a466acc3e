package shell

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferedReader_ReadLine(t *testing.T) {
	var out bytes.Buffer
	r := NewBufferedReader(strings.NewReader("ls\r\ncd /tmp\nlast"), &out)

	line, err := r.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "ls", line)

	line, err = r.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "cd /tmp", line)

	// partial final line is still delivered
	line, err = r.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = r.ReadLine("> ")
	assert.ErrorIs(t, err, io.EOF)

	assert.Equal(t, strings.Repeat("> ", 4), out.String())
	assert.NoError(t, r.Close())
}

func TestBufferedReader_EmptyInput(t *testing.T) {
	r := NewBufferedReader(strings.NewReader(""), io.Discard)

	_, err := r.ReadLine("")
	assert.ErrorIs(t, err, io.EOF)
}

func TestBufferedReader_ReadFailure(t *testing.T) {
	boom := errors.New("boom")
	r := NewBufferedReader(iotest.ErrReader(boom), io.Discard)

	_, err := r.ReadLine("")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, io.EOF)
}

func TestNewLineReader_NonTerminal(t *testing.T) {
	r := NewLineReader(strings.NewReader("x\n"), io.Discard, nil)

	_, ok := r.(*BufferedReader)
	assert.True(t, ok)
}

func TestLinerPrompt(t *testing.T) {
	tests := []struct {
		name     string
		prompt   string
		expected string
	}{
		{name: "plain", prompt: "shell> ", expected: "shell> "},
		{name: "tab", prompt: "rush\t> ", expected: "rush > "},
		{name: "ansi color", prompt: "\x1b[1;34mshell>\x1b[0m ", expected: "shell> "},
		{name: "bell and zero width joiner", prompt: "a\ab\u200dc$ ", expected: "abc$ "},
		{name: "unicode kept", prompt: "λ> ", expected: "λ> "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, linerPrompt(tt.prompt))
		})
	}
}
