package shell

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"golang.org/x/term"
)

var promptColor = color.New(color.FgBlue, color.Bold)

// BufferedReader reads lines from any stream. The prompt is written to Out
// before each read.
type BufferedReader struct {
	in  *bufio.Reader
	Out io.Writer
}

func NewBufferedReader(in io.Reader, out io.Writer) *BufferedReader {
	return &BufferedReader{
		in:  bufio.NewReader(in),
		Out: out,
	}
}

func (r *BufferedReader) ReadLine(prompt string) (string, error) {
	if r.Out != nil && prompt != "" {
		promptColor.Fprint(r.Out, prompt)
	}

	line, err := r.in.ReadString('\n')

	if err == io.EOF && line != "" {
		// last line had no newline; EOF is reported on the next call
		err = nil
	}

	if err != nil {
		return "", err
	}

	return trimNewline(line), nil
}

func (r *BufferedReader) Close() error {
	return nil
}

// LinerReader reads from an interactive terminal with line editing,
// in-memory history and builtin name completion.
type LinerReader struct {
	state *liner.State
}

func NewLinerReader(completions []string) *LinerReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(false)
	state.SetTabCompletionStyle(liner.TabPrints)

	names := append([]string(nil), completions...)
	state.SetCompleter(func(line string) (c []string) {
		for _, name := range names {
			if strings.HasPrefix(name, line) {
				c = append(c, name)
			}
		}
		return
	})

	return &LinerReader{state: state}
}

func (r *LinerReader) ReadLine(prompt string) (string, error) {
	line, err := r.state.Prompt(linerPrompt(prompt))
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(line) != "" {
		r.state.AppendHistory(line)
	}

	return line, nil
}

func (r *LinerReader) Close() error {
	return r.state.Close()
}

// NewLineReader picks a LinerReader when in is a terminal that liner
// supports, and a BufferedReader otherwise.
func NewLineReader(in io.Reader, out io.Writer, completions []string) LineReader {
	if f, ok := in.(*os.File); ok && f == os.Stdin {
		if term.IsTerminal(int(f.Fd())) && liner.TerminalSupported() {
			return NewLinerReader(completions)
		}
	}

	return NewBufferedReader(in, out)
}

// linerPrompt drops ANSI escape sequences and other control runes, which
// liner rejects with ErrInvalidPrompt. Tabs become a single space.
func linerPrompt(prompt string) string {
	var b strings.Builder
	escape := false

	for _, r := range prompt {
		switch {
		case escape:
			// CSI sequences end with a letter
			if unicode.IsLetter(r) {
				escape = false
			}
		case r == '\x1b':
			escape = true
		case r == '\t':
			b.WriteRune(' ')
		case unicode.Is(unicode.C, r):
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

func trimNewline(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
