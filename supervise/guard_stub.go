//go:build !linux

package supervise

import "errors"

// limitSnapshot is empty on platforms without setrlimit support; the memory
// ceiling is simply not enforced there.
type limitSnapshot struct{}

func overrideMemoryLimit() (limitSnapshot, error) {
	return limitSnapshot{}, nil
}

func restoreMemoryLimit(limitSnapshot) {}

// CurrentMemoryLimit is unsupported on this platform.
func CurrentMemoryLimit() (soft, hard uint64, err error) {
	return 0, 0, errors.New("memory limits unsupported on this platform")
}
