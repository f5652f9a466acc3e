//go:build !unix

package shell

import (
	"errors"
	"io/fs"
	"os"
)

func decodeState(res *Result, state *os.ProcessState) {
	res.ExitCode = state.ExitCode()
}

func isExecFailure(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission)
}
