package errors

// ErrorCode represents a unique error identifier
type ErrorCode int

// Error code ranges allocation:
// 10000-10999: System & Common errors
// 20000-20999: Supervision outcome errors
// 21000-21999: External-run outcome errors
// 22000-22999: Comparison outcome errors

const (
	// ========== System & Common Errors (10000-10999) ==========

	// Success
	Success ErrorCode = 10000

	// Generic errors (10000-10099)
	InternalError ErrorCode = 10001
	InvalidParams ErrorCode = 10002

	// Configuration errors (10100-10199)
	ConfigReadFailed  ErrorCode = 10100
	ConfigParseFailed ErrorCode = 10101
	ConfigInvalid     ErrorCode = 10102

	// ========== Supervision Outcomes (20000-20999) ==========

	SupervisionTimeout       ErrorCode = 20000
	SupervisionAttemptedExit ErrorCode = 20001
	SupervisionBlockedInput  ErrorCode = 20002
	SupervisionStudentPanic  ErrorCode = 20003
	SupervisionOutOfMemory   ErrorCode = 20004
	SupervisionNested        ErrorCode = 20100
	SupervisionGuardFailed   ErrorCode = 20101

	// ========== External-Run Outcomes (21000-21999) ==========

	RunResourceKilled ErrorCode = 21000
	RunNonZeroExit    ErrorCode = 21001
	RunSpawnFailed    ErrorCode = 21002
	RunStderrOutput   ErrorCode = 21003
	RunBlockedInput   ErrorCode = 21004
	RunCompileFailed  ErrorCode = 21100

	// ========== Comparison Outcomes (22000-22999) ==========

	CompareWrongLine   ErrorCode = 22000
	CompareMissingLine ErrorCode = 22001
	CompareExtraLine   ErrorCode = 22002
	CompareWrongAnswer ErrorCode = 22003
)

// codeMessages maps error codes to default messages
var codeMessages = map[ErrorCode]string{
	Success:       "success",
	InternalError: "internal error",
	InvalidParams: "invalid parameters",

	ConfigReadFailed:  "read config failed",
	ConfigParseFailed: "parse config failed",
	ConfigInvalid:     "invalid config",

	SupervisionTimeout:       "supervised code timed out",
	SupervisionAttemptedExit: "supervised code attempted to exit",
	SupervisionBlockedInput:  "supervised code read from disabled stdin",
	SupervisionStudentPanic:  "supervised code panicked",
	SupervisionOutOfMemory:   "supervised code exhausted memory",
	SupervisionNested:        "nested supervision is not supported",
	SupervisionGuardFailed:   "supervision guard setup failed",

	RunResourceKilled: "program killed for exceeding resource limits",
	RunNonZeroExit:    "program exited with a non-zero status",
	RunSpawnFailed:    "program could not be started",
	RunStderrOutput:   "program wrote to stderr",
	RunBlockedInput:   "program read from disabled stdin",
	RunCompileFailed:  "compilation failed",

	CompareWrongLine:   "output differs on a line",
	CompareMissingLine: "output is missing a line",
	CompareExtraLine:   "output has an unexpected line",
	CompareWrongAnswer: "wrong answer",
}

// Message returns the default message for the error code
func (c ErrorCode) Message() string {
	if msg, ok := codeMessages[c]; ok {
		return msg
	}
	return "unknown error"
}

// IsSupervisionOutcome reports whether the code classifies an abnormal
// termination of supervised code.
func (c ErrorCode) IsSupervisionOutcome() bool {
	return c >= 20000 && c < 21000
}

// IsRunOutcome reports whether the code classifies an external-run failure.
func (c ErrorCode) IsRunOutcome() bool {
	return c >= 21000 && c < 22000
}
