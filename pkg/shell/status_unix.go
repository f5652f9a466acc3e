//go:build unix

package shell

import (
	"errors"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

func decodeState(res *Result, state *os.ProcessState) {
	ws, ok := state.Sys().(syscall.WaitStatus)
	if !ok {
		res.ExitCode = state.ExitCode()
		return
	}

	if ws.Signaled() {
		sig := unix.Signal(ws.Signal())
		res.Signaled = true
		res.Signal = int(sig)
		res.SignalName = unix.SignalName(sig)
		res.ExitCode = -1
		return
	}

	res.ExitCode = ws.ExitStatus()
}

// isExecFailure reports whether a start error means the program image could
// not be loaded, as opposed to the process not being created at all.
func isExecFailure(err error) bool {
	var errno unix.Errno
	if !errors.As(err, &errno) {
		return false
	}

	switch errno {
	case unix.ENOENT, unix.ENOEXEC, unix.EACCES, unix.EPERM, unix.ENOTDIR,
		unix.ELOOP, unix.ENAMETOOLONG, unix.ETXTBSY, unix.EISDIR:
		return true
	}
	return false
}
