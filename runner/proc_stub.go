//go:build !linux

package runner

import (
	"errors"
	"os"
	"os/exec"
	"syscall"
)

func sysProcAttr() *syscall.SysProcAttr {
	return nil
}

// Memory ceilings on the child are only enforced on Linux.
func applyMemoryLimit(pid int, limitBytes int64) error {
	return nil
}

func killProcessGroup(pid int) {
	if pid <= 0 {
		return
	}
	if proc, err := os.FindProcess(pid); err == nil {
		_ = proc.Kill()
	}
}

func wasResourceKilled(waitErr error) bool {
	var exitErr *exec.ExitError
	return errors.As(waitErr, &exitErr) && exitErr.ExitCode() == -1
}
