package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/Neev4n/rush/pkg/shell"
)

// DirPerm is the mode given to directories created by mkdir.
const DirPerm = 0755

// Builtins returns the builtin table in lookup order. editors is the
// fallback list tried by nano.
func Builtins(editors []string) *shell.Registry {
	ed := &editor{candidates: append([]string(nil), editors...)}

	return shell.NewRegistry(
		shell.Builtin{Name: "exit", Usage: "exit", Summary: "quit the shell", Run: exitBuiltin},
		shell.Builtin{Name: "cd", Usage: "cd <dir>", Summary: "change directory", Run: cdBuiltin},
		shell.Builtin{Name: "help", Usage: "help", Summary: "show this help", Run: helpBuiltin},
		shell.Builtin{Name: "ls", Usage: "ls", Summary: "list files", Run: lsBuiltin},
		shell.Builtin{Name: "mkdir", Usage: "mkdir <dir>", Summary: "create a directory", Run: mkdirBuiltin},
		shell.Builtin{Name: "nano", Usage: "nano <file>", Summary: "edit a file (created if missing)", Run: ed.run},
	)
}

// Welcome lists the builtins the way the banner shows them.
func Welcome(r *shell.Registry) string {
	return fmt.Sprintf("\n=== Rush ===\nbuiltins: %s\n\n", strings.Join(r.Names(), ", "))
}

const Farewell = "bye\n"

func exitBuiltin(ctx context.Context, args []string, s *shell.Shell) shell.Action {
	return shell.Stop
}

func cdBuiltin(ctx context.Context, args []string, s *shell.Shell) shell.Action {
	if len(args) != 2 {
		s.Errorf("usage: cd <dir>\n")
		return shell.Continue
	}

	target := args[1]
	if err := s.FS.Chdir(target); err != nil {
		s.Errorf("cd: %s: %v\n", target, shell.Reason(err))
	}

	return shell.Continue
}

func helpBuiltin(ctx context.Context, args []string, s *shell.Shell) shell.Action {
	fmt.Fprintln(s.Out)
	s.Successf("=== HELP ===\n")

	for _, b := range s.Builtins() {
		fmt.Fprintf(s.Out, "%-12s - %s\n", b.Usage, b.Summary)
	}

	fmt.Fprintln(s.Out)
	return shell.Continue
}

func lsBuiltin(ctx context.Context, args []string, s *shell.Shell) shell.Action {
	entries, err := s.FS.ReadDir(".")
	if err != nil {
		s.Errorf("ls: %v\n", shell.Reason(err))
		return shell.Continue
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		names = append(names, entry.Name())
	}

	fmt.Fprintln(s.Out, strings.Join(names, "  "))
	return shell.Continue
}

func mkdirBuiltin(ctx context.Context, args []string, s *shell.Shell) shell.Action {
	if len(args) != 2 {
		s.Errorf("usage: mkdir <dir>\n")
		return shell.Continue
	}

	name := args[1]
	if err := s.FS.Mkdir(name, DirPerm); err != nil {
		s.Errorf("mkdir: %s: %v\n", name, shell.Reason(err))
		return shell.Continue
	}

	s.Successf("directory created: %s\n", name)
	return shell.Continue
}
