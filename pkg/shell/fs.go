package shell

import (
	"errors"
	"io/fs"
	"os"
)

// OSFileSystem uses the real file system of the host.
type OSFileSystem struct{}

func (OSFileSystem) Chdir(dir string) error {
	return os.Chdir(dir)
}

func (OSFileSystem) Mkdir(name string, perm os.FileMode) error {
	return os.Mkdir(name, perm)
}

func (OSFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

func (OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// Reason strips the operation and path from an OS error so callers can
// print their own prefix.
func Reason(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}

	return err
}
