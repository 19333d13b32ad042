package checker

import (
	"bytes"
	"path/filepath"
	"testing"

	"corrector/pkg/utils/logger"
)

// captureLog points the global logger at a fresh file and returns its path,
// so tests can assert on the structured log entries a failure produces.
func captureLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "checker.log")
	if err := logger.Init(logger.Config{Level: "debug", Format: "json", OutputPath: path}); err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return path
}

type exitSentinel struct {
	code int
}

// failRecord is what a check under test wrote and whether it terminated.
type failRecord struct {
	exited bool
	code   int
	stderr string
	stdout string
}

// interceptFail swaps the termination primitive and output streams so a
// failing check can be observed instead of killing the test process.
func interceptFail(t *testing.T, fn func()) failRecord {
	t.Helper()

	var errBuf, outBuf bytes.Buffer
	oldExit, oldErr, oldOut := osExit, stderr, stdout
	defer func() {
		osExit, stderr, stdout = oldExit, oldErr, oldOut
	}()
	stderr, stdout = &errBuf, &outBuf
	osExit = func(code int) {
		panic(exitSentinel{code: code})
	}

	record := failRecord{}
	func() {
		defer func() {
			if r := recover(); r != nil {
				s, ok := r.(exitSentinel)
				if !ok {
					panic(r)
				}
				record.exited = true
				record.code = s.code
			}
		}()
		fn()
	}()
	record.stderr = errBuf.String()
	record.stdout = outBuf.String()
	return record
}
