package shell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/Neev4n/rush/pkg/shell"
)

type editor struct {
	candidates []string
}

func (e *editor) run(ctx context.Context, args []string, s *shell.Shell) shell.Action {
	if len(args) != 2 {
		s.Errorf("usage: nano <file>\n")
		return shell.Continue
	}

	path := args[1]

	if dir, ok := parentDir(path); ok {
		if _, err := s.FS.Stat(dir); err != nil {
			s.Errorf("error: parent directory missing: %s\n", dir)
			return shell.Continue
		}
	}

	s.Successf("opening editor: %s\n", path)

	res, err := e.launch(ctx, s, path)
	if errors.Is(err, shell.ErrNoEditor) {
		s.Errorf("%s\n", e.missingMessage())
	}

	s.Logger().WithFields(logrus.Fields{
		"file":   path,
		"status": res.String(),
	}).Debug("editor finished")

	if !res.Exited() {
		return shell.Continue
	}

	s.Successf("editing finished. ")

	info, err := s.FS.Stat(path)
	if err != nil {
		s.Errorf("file not created/modified\n")
		return shell.Continue
	}

	fmt.Fprintf(s.Out, "size: %s (%d bytes)\n", humanize.Bytes(uint64(info.Size())), info.Size())
	return shell.Continue
}

// launch runs the first candidate that can be started. Candidates that are
// missing or cannot be executed fall through to the next one.
func (e *editor) launch(ctx context.Context, s *shell.Shell, path string) (shell.Result, error) {
	for i, name := range e.candidates {
		res, err := s.Exec(ctx, name, []string{path})
		if err == nil {
			return res, nil
		}

		s.Logger().WithError(err).WithField("editor", name).Debug("editor launch failed")

		if i+1 < len(e.candidates) {
			next := e.candidates[i+1]
			if errors.Is(err, shell.ErrNotFound) {
				s.Errorf("%s not found, trying %s...\n", name, next)
			} else {
				s.Errorf("%s: %v, trying %s...\n", name, shell.Reason(err), next)
			}
		}
	}

	return shell.Result{ExitCode: shell.ExitNotFound}, shell.ErrNoEditor
}

func (e *editor) missingMessage() string {
	if len(e.candidates) == 0 {
		return shell.ErrNoEditor.Error()
	}
	return fmt.Sprintf("%s (install %s)", shell.ErrNoEditor, strings.Join(e.candidates, " or "))
}

// parentDir returns the part of path before its last slash.
func parentDir(path string) (string, bool) {
	i := strings.LastIndex(path, "/")
	if i < 0 {
		return "", false
	}
	if i == 0 {
		return "/", true
	}
	return path[:i], true
}
