package supervise

import "strings"

// Run holds the stdout and stderr captured during one supervision scope.
// It is populated while the scope is open and sealed when it closes; the
// trimmed accessors are safe at any point.
type Run struct {
	stdout *capture
	stderr *capture
}

// Out returns the captured stdout, stripped of surrounding whitespace.
func (r *Run) Out() string {
	return strings.TrimSpace(r.stdout.String())
}

// Err returns the captured stderr, stripped of surrounding whitespace.
func (r *Run) Err() string {
	return strings.TrimSpace(r.stderr.String())
}
