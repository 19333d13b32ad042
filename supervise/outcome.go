// Package supervise runs learner code under a scoped supervision context:
// stdout/stderr are captured, stdin is disabled, a virtual-memory ceiling and
// a wall-clock deadline are armed, and any abnormal termination is classified
// into a closed set of outcomes.
package supervise

// Outcome classifies how a supervision scope ended.
type Outcome int

const (
	// exited normally
	OutcomeOK Outcome = iota

	// the wall-clock deadline fired
	OutcomeTimeout
	// learner code tried to terminate the process
	OutcomeAttemptedExit
	// learner code read from the disabled stdin
	OutcomeBlockedInput
	// learner code panicked or returned an error
	OutcomePanic
	// allocation failure under the memory ceiling
	OutcomeMemoryExhaustion

	// the guard could not be acquired (nested scope, rlimit failure)
	OutcomeGuardError
)

var outcomeToString = []string{
	"OK",
	"Timeout",
	"Attempted Exit",
	"Blocked Input",
	"Student Exception",
	"Memory Exhaustion",
	"Guard Error",
}

func (o Outcome) String() string {
	oi := int(o)
	if oi < 0 || oi >= len(outcomeToString) {
		return "Unknown"
	}
	return outcomeToString[oi]
}
