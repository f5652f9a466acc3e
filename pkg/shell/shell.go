package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// DefaultPrompt is shown before each line.
const DefaultPrompt = "shell> "

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
)

type Shell struct {
	Out io.Writer
	Err io.Writer
	FS  FileSystem

	in         io.Reader
	reader     LineReader
	prompt     string
	builtins   *Registry
	executor   Executor
	parser     Parser
	logger     logrus.FieldLogger
	welcome    string
	farewell   string
	lastStatus int
}

type Option func(*Shell)

func WithBuiltins(r *Registry) Option {
	return func(s *Shell) { s.builtins = r }
}

func WithExecutor(e Executor) Option {
	return func(s *Shell) { s.executor = e }
}

func WithParser(p Parser) Option {
	return func(s *Shell) { s.parser = p }
}

func WithLineReader(r LineReader) Option {
	return func(s *Shell) { s.reader = r }
}

func WithFileSystem(fsys FileSystem) Option {
	return func(s *Shell) { s.FS = fsys }
}

func WithPrompt(prompt string) Option {
	return func(s *Shell) { s.prompt = prompt }
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Shell) { s.logger = logger }
}

// WithBanner sets the lines printed when the loop starts and ends.
func WithBanner(welcome, farewell string) Option {
	return func(s *Shell) {
		s.welcome = welcome
		s.farewell = farewell
	}
}

func New(reader io.Reader, out, errw io.Writer, opts ...Option) *Shell {
	s := &Shell{
		Out:    out,
		Err:    errw,
		FS:     OSFileSystem{},
		in:     reader,
		prompt: DefaultPrompt,
		parser: NewDefaultParser(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		s.logger = l
	}

	if s.executor == nil {
		s.executor = NewDefaultExecutor(s.logger)
	}

	if s.builtins == nil {
		s.builtins = NewRegistry()
	}

	if s.reader == nil {
		s.reader = NewBufferedReader(reader, out)
	}

	return s
}

// Run reads and dispatches lines until end of input or a builtin returns
// Stop. Only a failure to read input is returned as an error.
func (s *Shell) Run(ctx context.Context) error {
	defer s.reader.Close()

	if s.welcome != "" {
		fmt.Fprint(s.Out, s.welcome)
	}

	for {
		line, err := s.reader.ReadLine(s.prompt)

		if errors.Is(err, io.EOF) {
			s.logger.Debug("end of input")
			fmt.Fprintln(s.Out)
			s.sayGoodbye()
			return nil
		}

		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		args, err := s.parser.Parse(line)
		if err != nil {
			s.Errorf("parse error: %v\n", err)
			continue
		}

		if s.Dispatch(ctx, args) == Stop {
			s.sayGoodbye()
			return nil
		}
	}
}

// Dispatch runs a builtin when args[0] names one and an external program
// otherwise. An empty vector does nothing.
func (s *Shell) Dispatch(ctx context.Context, args []string) Action {
	if len(args) == 0 {
		return Continue
	}

	if b, ok := s.builtins.Lookup(args[0]); ok {
		s.logger.WithField("builtin", b.Name).Debug("dispatch")
		return b.Run(ctx, args, s)
	}

	res, err := s.Exec(ctx, args[0], args[1:])

	if errors.Is(err, ErrNotFound) {
		s.Errorf("unknown command: %s\n", args[0])
		return Continue
	}

	if err != nil {
		s.Errorf("%s: %v\n", args[0], Reason(err))
		return Continue
	}

	s.logger.WithFields(logrus.Fields{
		"cmd":    args[0],
		"status": res.String(),
	}).Debug("external command finished")

	return Continue
}

// Exec runs an external program in the foreground with the shell's
// streams and records its status.
func (s *Shell) Exec(ctx context.Context, name string, args []string) (Result, error) {
	res, err := s.executor.Execute(ctx, name, args, s.ChildIO())

	switch {
	case errors.Is(err, ErrNotFound):
		s.lastStatus = ExitNotFound
	case err != nil:
		s.lastStatus = 1
	default:
		s.lastStatus = res.Status()
	}

	return res, err
}

// ChildIO binds children to the shell's streams. Input is only shared when
// it is a file; otherwise children read from the null device.
func (s *Shell) ChildIO() IOBindings {
	var stdin io.Reader
	if f, ok := s.in.(*os.File); ok {
		stdin = f
	}

	return IOBindings{
		Stdin:  stdin,
		Stdout: s.Out,
		Stderr: s.Err,
	}
}

func (s *Shell) Builtins() []Builtin {
	return s.builtins.All()
}

// LastStatus is the status of the last external command.
func (s *Shell) LastStatus() int {
	return s.lastStatus
}

func (s *Shell) Logger() logrus.FieldLogger {
	return s.logger
}

func (s *Shell) Errorf(format string, a ...any) {
	errorColor.Fprintf(s.Err, format, a...)
}

func (s *Shell) Successf(format string, a ...any) {
	successColor.Fprintf(s.Out, format, a...)
}

func (s *Shell) sayGoodbye() {
	if s.farewell != "" {
		fmt.Fprint(s.Out, s.farewell)
	}
}
