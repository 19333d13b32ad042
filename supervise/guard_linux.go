//go:build linux

package supervise

import "golang.org/x/sys/unix"

// memoryCeiling is the address-space limit imposed for the duration of a
// scope. 1GB should be enough for anybody.
const memoryCeiling = 1 << 30

// limitSnapshot records the RLIMIT_AS pair in effect before the scope.
type limitSnapshot struct {
	rlim unix.Rlimit
	ok   bool
}

func overrideMemoryLimit() (limitSnapshot, error) {
	var old unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_AS, &old); err != nil {
		return limitSnapshot{}, err
	}
	ceiling := unix.Rlimit{Cur: memoryCeiling, Max: old.Max}
	if old.Max != unix.RLIM_INFINITY && old.Max < memoryCeiling {
		ceiling.Cur = old.Max
	}
	if err := unix.Setrlimit(unix.RLIMIT_AS, &ceiling); err != nil {
		return limitSnapshot{}, err
	}
	return limitSnapshot{rlim: old, ok: true}, nil
}

func restoreMemoryLimit(snapshot limitSnapshot) {
	if !snapshot.ok {
		return
	}
	_ = unix.Setrlimit(unix.RLIMIT_AS, &snapshot.rlim)
}

// CurrentMemoryLimit returns the soft and hard RLIMIT_AS values.
func CurrentMemoryLimit() (soft, hard uint64, err error) {
	var rlim unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_AS, &rlim); err != nil {
		return 0, 0, err
	}
	return rlim.Cur, rlim.Max, nil
}
