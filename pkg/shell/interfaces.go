package shell

import (
	"context"
	"io/fs"
	"os"
)

type Executor interface {
	Execute(ctx context.Context, name string, args []string, io IOBindings) (Result, error)
}

type Parser interface {
	Parse(line string) ([]string, error)
}

// LineReader returns one line per call without its trailing newline.
// io.EOF is returned only when the input ends with no pending data.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

type FileSystem interface {
	Chdir(dir string) error
	Mkdir(name string, perm os.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
	Stat(name string) (fs.FileInfo, error)
}
