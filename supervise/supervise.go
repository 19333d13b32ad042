package supervise

import (
	"context"
	"errors"
	"io/fs"
	"runtime/debug"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appErr "corrector/pkg/errors"
	"corrector/pkg/utils/logger"
)

const (
	// DefaultTimeout is the wall-clock deadline armed for a scope.
	DefaultTimeout = 1 * time.Second
	// DefaultMaxCaptureBytes bounds each captured stream.
	DefaultMaxCaptureBytes int64 = 64 * 1024
)

// ErrInputDisabled is the structural signal for a read attempted on the
// disabled stdin. Learner-facing shims can return it directly; reads through
// os.Stdin surface as fs.ErrClosed and are classified the same way.
var ErrInputDisabled = errors.New("stdin is disabled during supervision")

// Options controls one supervision scope.
type Options struct {
	// Timeout is the wall-clock deadline. Zero means DefaultTimeout.
	Timeout time.Duration
	// MaxCaptureBytes bounds each of the stdout and stderr sinks.
	MaxCaptureBytes int64
}

// Verdict is the classified end of a supervision scope.
type Verdict struct {
	Outcome Outcome
	// Err carries the classified cause; nil when Outcome is OutcomeOK.
	Err error
	// PanicValue and Stack are set for OutcomePanic and
	// OutcomeMemoryExhaustion so the explainer can render a traceback.
	PanicValue any
	Stack      []byte
	// ExitCode is the status requested by an intercepted exit attempt.
	ExitCode int
}

type exitAttempt struct {
	code int
}

// Exit requests process termination from inside a supervised scope. The
// attempt is intercepted and classified instead of terminating the host;
// outside a scope it panics.
func Exit(code int) {
	panic(exitAttempt{code: code})
}

// With runs body under a supervision scope: stdout and stderr are captured
// into the returned Run, stdin is disabled, the memory ceiling and deadline
// are armed. All process-wide overrides are restored before With returns, on
// every path. The caller decides what to report from the Verdict.
func With(ctx context.Context, opts Options, body func() error) (*Run, Verdict) {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxCaptureBytes <= 0 {
		opts.MaxCaptureBytes = DefaultMaxCaptureBytes
	}

	scopeID := uuid.NewString()
	ctx = context.WithValue(ctx, logger.ScopeIDKey, scopeID)
	logger.Debug(ctx, "supervision scope opened",
		zap.Duration("timeout", opts.Timeout),
		zap.Int64("max_capture_bytes", opts.MaxCaptureBytes))

	g, run, err := acquire(opts.MaxCaptureBytes)
	if err != nil {
		return nil, Verdict{Outcome: OutcomeGuardError, Err: err}
	}
	defer g.release()

	done := make(chan Verdict, 1)
	go func() {
		completed := false
		var bodyErr error
		defer func() {
			if r := recover(); r != nil {
				done <- classifyPanic(r, debug.Stack())
				return
			}
			if !completed {
				// runtime.Goexit: the goroutine died without panicking,
				// which only an exit attempt does.
				done <- Verdict{
					Outcome: OutcomeAttemptedExit,
					Err:     appErr.New(appErr.SupervisionAttemptedExit),
				}
				return
			}
			done <- classifyError(bodyErr)
		}()
		bodyErr = body()
		completed = true
	}()

	var verdict Verdict
	select {
	case verdict = <-done:
	case <-time.After(opts.Timeout):
		verdict = Verdict{
			Outcome: OutcomeTimeout,
			Err:     appErr.New(appErr.SupervisionTimeout),
		}
	case <-ctx.Done():
		verdict = Verdict{
			Outcome: OutcomeTimeout,
			Err:     appErr.Wrap(ctx.Err(), appErr.SupervisionTimeout),
		}
	}

	// Restore before the caller renders anything: diagnostics must reach the
	// real stderr, not the scope's sink.
	g.release()

	logger.Debug(ctx, "supervision scope closed",
		zap.String("outcome", verdict.Outcome.String()))
	return run, verdict
}

func classifyPanic(value any, stack []byte) Verdict {
	if attempt, ok := value.(exitAttempt); ok {
		return Verdict{
			Outcome:  OutcomeAttemptedExit,
			Err:      appErr.New(appErr.SupervisionAttemptedExit),
			ExitCode: attempt.code,
		}
	}
	if err, ok := value.(error); ok {
		if isBlockedInput(err) {
			return Verdict{
				Outcome: OutcomeBlockedInput,
				Err:     appErr.Wrap(err, appErr.SupervisionBlockedInput),
			}
		}
	}
	if isAllocationFailure(value) {
		return Verdict{
			Outcome:    OutcomeMemoryExhaustion,
			Err:        appErr.New(appErr.SupervisionOutOfMemory),
			PanicValue: value,
			Stack:      stack,
		}
	}
	return Verdict{
		Outcome:    OutcomePanic,
		Err:        appErr.Newf(appErr.SupervisionStudentPanic, "panic: %v", value),
		PanicValue: value,
		Stack:      stack,
	}
}

func classifyError(err error) Verdict {
	if err == nil {
		return Verdict{Outcome: OutcomeOK}
	}
	if isBlockedInput(err) {
		return Verdict{
			Outcome: OutcomeBlockedInput,
			Err:     appErr.Wrap(err, appErr.SupervisionBlockedInput),
		}
	}
	if isAllocationFailure(err) {
		return Verdict{
			Outcome:    OutcomeMemoryExhaustion,
			Err:        appErr.New(appErr.SupervisionOutOfMemory),
			PanicValue: err,
			Stack:      debug.Stack(),
		}
	}
	return Verdict{
		Outcome:    OutcomePanic,
		Err:        appErr.Wrap(err, appErr.SupervisionStudentPanic),
		PanicValue: err,
		Stack:      debug.Stack(),
	}
}

// isBlockedInput recognizes a read on the disabled stdin: the structural
// sentinels first, then the error text reads through a closed descriptor
// produce. Any other error of the same broad class falls through to the
// generic classification.
func isBlockedInput(err error) bool {
	if errors.Is(err, ErrInputDisabled) || errors.Is(err, fs.ErrClosed) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "file already closed") ||
		strings.Contains(msg, "bad file descriptor")
}

func isAllocationFailure(value any) bool {
	var msg string
	switch v := value.(type) {
	case error:
		msg = v.Error()
	case string:
		msg = v
	default:
		return false
	}
	return strings.Contains(msg, "out of memory") ||
		strings.Contains(msg, "cannot allocate memory")
}
