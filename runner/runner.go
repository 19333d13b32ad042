// Package runner spawns a learner program in a separate process with stdin
// disabled, captures bounded stdout/stderr, and enforces wall-clock and
// memory limits through the operating system.
package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appErr "corrector/pkg/errors"
	"corrector/pkg/utils/logger"
)

const (
	// DefaultTimeout bounds the child's wall-clock time.
	DefaultTimeout = 10 * time.Second
	// DefaultMemoryLimit is the address-space ceiling applied to the child.
	DefaultMemoryLimit int64 = 1 << 30
	// DefaultMaxCaptureBytes bounds each captured stream.
	DefaultMaxCaptureBytes int64 = 64 * 1024
)

// Spec describes one external program run.
type Spec struct {
	Path string
	Args []string
	Dir  string
	Env  []string

	// Timeout is the wall-clock limit; zero means DefaultTimeout.
	Timeout time.Duration
	// MemoryLimitBytes is the address-space ceiling; zero means
	// DefaultMemoryLimit, negative disables it.
	MemoryLimitBytes int64
	// MaxCaptureBytes bounds each of stdout and stderr.
	MaxCaptureBytes int64
}

// Result captures one external program run. The child's streams and exit
// status are the entire contract.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	WallTime time.Duration
	// ResourceKilled is set when the child was SIGKILLed, either by the
	// wall-clock watchdog or by the operating system for exceeding limits.
	ResourceKilled bool
}

// Execute runs the program described by spec. The returned error is set only
// for spawn failures; abnormal child exits are reported through Result.
func Execute(ctx context.Context, spec Spec) (Result, error) {
	if spec.Timeout <= 0 {
		spec.Timeout = DefaultTimeout
	}
	if spec.MemoryLimitBytes == 0 {
		spec.MemoryLimitBytes = DefaultMemoryLimit
	}
	if spec.MaxCaptureBytes <= 0 {
		spec.MaxCaptureBytes = DefaultMaxCaptureBytes
	}

	runID := uuid.NewString()
	ctx = context.WithValue(ctx, logger.RunIDKey, runID)
	logger.Debug(ctx, "external run started",
		zap.String("path", spec.Path),
		zap.Strings("args", spec.Args),
		zap.Duration("timeout", spec.Timeout))

	cmd := exec.CommandContext(ctx, spec.Path, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Env = spec.Env
	// A nil Stdin connects the child to the null device: no standard input.
	cmd.Stdin = nil
	cmd.SysProcAttr = sysProcAttr()

	stdout := &boundedBuffer{max: spec.MaxCaptureBytes}
	stderr := &boundedBuffer{max: spec.MaxCaptureBytes}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return Result{}, appErr.Wrapf(err, appErr.RunSpawnFailed,
			"could not start %s: %v", spec.Path, err)
	}

	if spec.MemoryLimitBytes > 0 {
		if err := applyMemoryLimit(cmd.Process.Pid, spec.MemoryLimitBytes); err != nil {
			logger.Warn(ctx, "apply memory limit failed", zap.Error(err))
		}
	}

	var timedOut atomic.Bool
	done := make(chan struct{})
	go func() {
		select {
		case <-time.After(spec.Timeout):
			timedOut.Store(true)
			killProcessGroup(cmd.Process.Pid)
		case <-ctx.Done():
			killProcessGroup(cmd.Process.Pid)
		case <-done:
		}
	}()

	waitErr := cmd.Wait()
	close(done)

	res := Result{
		ExitCode: exitCodeFromErr(waitErr, cmd),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		WallTime: time.Since(start),
	}
	if timedOut.Load() || wasResourceKilled(waitErr) {
		res.ResourceKilled = true
	}

	logger.Debug(ctx, "external run finished",
		zap.Int("exit_code", res.ExitCode),
		zap.Bool("resource_killed", res.ResourceKilled),
		zap.Duration("wall_time", res.WallTime))
	return res, nil
}

func exitCodeFromErr(err error, cmd *exec.Cmd) int {
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode()
	}
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// boundedBuffer keeps at most max bytes and silently discards the rest so a
// chatty child never blocks or bloats diagnostics.
type boundedBuffer struct {
	buf bytes.Buffer
	max int64
}

func (b *boundedBuffer) Write(p []byte) (int, error) {
	n := len(p)
	if remain := b.max - int64(b.buf.Len()); remain > 0 {
		if int64(len(p)) > remain {
			p = p[:remain]
		}
		b.buf.Write(p)
	}
	return n, nil
}

func (b *boundedBuffer) String() string {
	return b.buf.String()
}
