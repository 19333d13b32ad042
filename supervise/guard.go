package supervise

import (
	"os"
	"sync"

	appErr "corrector/pkg/errors"
)

// scopeMu serializes supervision scopes. The guard mutates process-wide
// state (rlimit, os.Stdin, os.Stdout, os.Stderr), so only one scope may be
// active at a time; nested acquisition is refused, not queued.
var scopeMu sync.Mutex

// guard owns the process-wide overrides for one scope and restores them
// exactly once on release, whatever path the scope exits through.
type guard struct {
	releaseOnce sync.Once

	oldStdin  *os.File
	oldStdout *os.File
	oldStderr *os.File

	limits limitSnapshot

	stdout *capture
	stderr *capture
}

func acquire(maxCapture int64) (*guard, *Run, error) {
	if !scopeMu.TryLock() {
		return nil, nil, appErr.New(appErr.SupervisionNested)
	}

	g := &guard{
		oldStdin:  os.Stdin,
		oldStdout: os.Stdout,
		oldStderr: os.Stderr,
	}

	snapshot, err := overrideMemoryLimit()
	if err != nil {
		scopeMu.Unlock()
		return nil, nil, appErr.Wrap(err, appErr.SupervisionGuardFailed)
	}
	g.limits = snapshot

	fail := func(err error) (*guard, *Run, error) {
		g.release()
		return nil, nil, appErr.Wrap(err, appErr.SupervisionGuardFailed)
	}

	stdin, err := disabledStdin()
	if err != nil {
		return fail(err)
	}
	os.Stdin = stdin

	if g.stdout, err = newCapture(maxCapture); err != nil {
		return fail(err)
	}
	os.Stdout = g.stdout.w

	if g.stderr, err = newCapture(maxCapture); err != nil {
		return fail(err)
	}
	os.Stderr = g.stderr.w

	return g, &Run{stdout: g.stdout, stderr: g.stderr}, nil
}

// release restores every override. Safe to call on every exit path; only the
// first call does anything.
func (g *guard) release() {
	g.releaseOnce.Do(func() {
		os.Stdin = g.oldStdin
		os.Stdout = g.oldStdout
		os.Stderr = g.oldStderr
		if g.stdout != nil {
			g.stdout.close()
		}
		if g.stderr != nil {
			g.stderr.close()
		}
		restoreMemoryLimit(g.limits)
		scopeMu.Unlock()
	})
}
