// Package explain turns a recovered panic into a structured, section-keyed
// explanation report, and renders it through a pluggable formatter. A richer
// explainer can be injected; the built-in one produces a filtered traceback
// with the library's own frames excluded.
package explain

import "sync"

// Report is the structured output of an explanation step, keyed by section
// name. Section ordering and rendering live in the formatter.
type Report map[string]string

// Formatter assembles a Report into one string.
type Formatter func(Report) string

// Explainer produces a Report from a panic value and its goroutine stack.
type Explainer interface {
	Explain(value any, stack []byte) Report
}

var (
	mu        sync.RWMutex
	explainer Explainer = &tracebackExplainer{}
	formatter Formatter = func(r Report) string { return r["traceback"] }
	excluded  []string
)

// SetExplainer replaces the active explainer.
func SetExplainer(e Explainer) {
	if e == nil {
		return
	}
	mu.Lock()
	explainer = e
	mu.Unlock()
}

// SetFormatter registers the function that renders reports; the Markdown
// renderer is plugged in here by the checker package.
func SetFormatter(f Formatter) {
	if f == nil {
		return
	}
	mu.Lock()
	formatter = f
	mu.Unlock()
}

// ExcludeFile removes frames whose file path contains the given fragment
// from rendered tracebacks, so grading-library internals never pollute a
// learner-facing explanation.
func ExcludeFile(pathFragment string) {
	if pathFragment == "" {
		return
	}
	mu.Lock()
	excluded = append(excluded, pathFragment)
	mu.Unlock()
}

func excludedFiles() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, len(excluded))
	copy(out, excluded)
	return out
}

// Explain runs the active explainer on the panic value and stack.
func Explain(value any, stack []byte) Report {
	mu.RLock()
	e := explainer
	mu.RUnlock()
	return e.Explain(value, stack)
}

// Render formats a report with the registered formatter.
func Render(report Report) string {
	mu.RLock()
	f := formatter
	mu.RUnlock()
	return f(report)
}
