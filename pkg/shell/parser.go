package shell

import (
	"io"
	"strings"
	"unicode"
)

// MaxArgs bounds the argument vector. Tokens past the limit are dropped.
const MaxArgs = 63

type DefaultParser struct {
	MaxArgs int

	newReader  func(string) io.RuneReader
	newBuilder func() *strings.Builder
}

func NewDefaultParser() *DefaultParser {
	d := &DefaultParser{
		MaxArgs: MaxArgs,
		newReader: func(s string) io.RuneReader {
			return strings.NewReader(s)
		},
		newBuilder: func() *strings.Builder {
			return &strings.Builder{}
		},
	}

	return d
}

type tokenBuffer struct {
	builder *strings.Builder
}

func newTokenBuffer(builder *strings.Builder) *tokenBuffer {
	return &tokenBuffer{
		builder: builder,
	}
}

func (tokenBuffer *tokenBuffer) isEmpty() bool {
	return tokenBuffer.builder.Len() == 0
}

func (tokenBuffer *tokenBuffer) appendRune(r rune) {
	tokenBuffer.builder.WriteRune(r)
}

func (tokenBuffer *tokenBuffer) flushIfNotEmpty(args []string) []string {
	if !tokenBuffer.isEmpty() {
		s := tokenBuffer.builder.String()
		tokenBuffer.builder.Reset()
		args = append(args, s)
	}

	return args
}

// Parse splits line on runs of whitespace. Quotes and backslashes are
// ordinary characters. Every returned token is an owned, non-empty string.
func (p *DefaultParser) Parse(line string) ([]string, error) {
	runeReader := p.newReader(line)
	tokenBuffer := newTokenBuffer(p.newBuilder())

	limit := p.MaxArgs
	if limit <= 0 {
		limit = MaxArgs
	}

	args := []string{}

	for len(args) < limit {
		ch, _, err := runeReader.ReadRune()

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, err
		}

		if unicode.IsSpace(ch) {
			args = tokenBuffer.flushIfNotEmpty(args)
		} else {
			tokenBuffer.appendRune(ch)
		}
	}

	if len(args) < limit {
		args = tokenBuffer.flushIfNotEmpty(args)
	}

	return args, nil
}
