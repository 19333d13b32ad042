//go:build linux

package runner

import (
	"errors"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setpgid:   true,
		Pdeathsig: syscall.SIGKILL,
	}
}

// applyMemoryLimit imposes an address-space ceiling on the already-started
// child via prlimit, so no helper binary is needed between fork and exec.
func applyMemoryLimit(pid int, limitBytes int64) error {
	rlim := unix.Rlimit{Cur: uint64(limitBytes), Max: uint64(limitBytes)}
	return unix.Prlimit(pid, unix.RLIMIT_AS, &rlim, nil)
}

func killProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	_ = syscall.Kill(-pid, syscall.SIGKILL)
}

// wasResourceKilled reports whether the child died from SIGKILL, the signal
// the kernel and the watchdog both use for resource violations.
func wasResourceKilled(waitErr error) bool {
	var exitErr *exec.ExitError
	if !errors.As(waitErr, &exitErr) {
		return false
	}
	ws, ok := exitErr.Sys().(syscall.WaitStatus)
	if !ok {
		return false
	}
	return ws.Signaled() && ws.Signal() == syscall.SIGKILL
}
