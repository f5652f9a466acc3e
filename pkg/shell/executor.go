package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/sirupsen/logrus"
)

var (
	ErrNotFound = errors.New("not found")
	ErrNoEditor = errors.New("no text editor found")
)

// ExitNotFound is the status recorded when a command cannot be resolved.
const ExitNotFound = 127

type IOBindings struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Result describes how a child process terminated.
type Result struct {
	Path       string
	ExitCode   int
	Signaled   bool
	Signal     int
	SignalName string
}

// Exited reports whether the child ran to a normal exit.
func (r Result) Exited() bool {
	return !r.Signaled
}

// Status folds the result into a single shell status value.
func (r Result) Status() int {
	if r.Signaled {
		return 128 + r.Signal
	}
	return r.ExitCode
}

func (r Result) String() string {
	if r.Signaled {
		return fmt.Sprintf("killed by signal %d (%s)", r.Signal, r.SignalName)
	}
	return fmt.Sprintf("exit status %d", r.ExitCode)
}

type DefaultExecutor struct {
	LookupFunc func(name string) (string, error)
	Logger     logrus.FieldLogger
}

func NewDefaultExecutor(logger logrus.FieldLogger) *DefaultExecutor {
	return &DefaultExecutor{
		LookupFunc: LookPath,
		Logger:     logger,
	}
}

// LookPath resolves name against the search path. Names containing a
// slash are checked directly. Matches relative to the working directory
// are accepted.
func LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if errors.Is(err, exec.ErrDot) {
		return path, nil
	}
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return path, nil
}

// Execute runs name synchronously and waits for it to terminate. A non-zero
// exit or a signal is reported through Result, not as an error.
func (e *DefaultExecutor) Execute(ctx context.Context, name string, args []string, io IOBindings) (Result, error) {
	lookup := e.LookupFunc
	if lookup == nil {
		lookup = LookPath
	}

	logger := e.logger().WithField("cmd", name)

	path, err := lookup(name)
	if err != nil {
		logger.WithError(err).Debug("lookup failed")
		if !errors.Is(err, ErrNotFound) {
			err = fmt.Errorf("%w: %v", ErrNotFound, err)
		}
		return Result{ExitCode: ExitNotFound}, err
	}

	externalCmd := exec.CommandContext(ctx, path, args...)
	externalCmd.Args = append([]string{name}, args...)
	externalCmd.Stdin = io.Stdin
	externalCmd.Stdout = io.Stdout
	externalCmd.Stderr = io.Stderr

	logger.WithFields(logrus.Fields{
		"path": path,
		"args": args,
	}).Debug("spawning")

	if err := externalCmd.Start(); err != nil {
		logger.WithError(err).Debug("start failed")
		if isExecFailure(err) {
			return Result{Path: path, ExitCode: ExitNotFound}, fmt.Errorf("start %s: %w: %w", name, ErrNotFound, err)
		}
		return Result{Path: path, ExitCode: -1}, fmt.Errorf("start %s: %w", name, err)
	}

	res := Result{Path: path}
	err = externalCmd.Wait()

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return Result{Path: path, ExitCode: -1}, fmt.Errorf("wait %s: %w", name, err)
	}

	decodeState(&res, externalCmd.ProcessState)

	logger.WithFields(logrus.Fields{
		"pid":    externalCmd.ProcessState.Pid(),
		"status": res.String(),
	}).Debug("child terminated")

	return res, nil
}

func (e *DefaultExecutor) logger() logrus.FieldLogger {
	if e.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		e.Logger = l
	}
	return e.Logger
}
