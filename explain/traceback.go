package explain

import (
	"fmt"
	"strings"
)

// tracebackExplainer is the built-in explainer: it reports the panic value
// and a filtered goroutine stack, oldest call first, the way learners read
// tracebacks.
type tracebackExplainer struct{}

func (tracebackExplainer) Explain(value any, stack []byte) Report {
	report := Report{
		"header":    headerFor(value),
		"traceback": renderTraceback(value, stack),
	}
	return report
}

func headerFor(value any) string {
	if err, ok := value.(error); ok {
		return strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
	}
	return "panic"
}

type frame struct {
	fn  string
	loc string
}

func renderTraceback(value any, stack []byte) string {
	frames := parseFrames(stack)
	var sb strings.Builder
	sb.WriteString("Traceback (most recent call last):\n")
	// Go stacks are most-recent-first; reverse to match the heading.
	for i := len(frames) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, "  %s\n    %s\n", frames[i].loc, frames[i].fn)
	}
	fmt.Fprintf(&sb, "panic: %v", value)
	return sb.String()
}

// parseFrames reads the pairs of lines emitted by runtime stack dumps,
// dropping runtime internals and any excluded library file.
func parseFrames(stack []byte) []frame {
	lines := strings.Split(string(stack), "\n")
	var frames []frame
	for i := 0; i < len(lines)-1; i++ {
		fn := strings.TrimSpace(lines[i])
		loc := strings.TrimSpace(lines[i+1])
		if fn == "" || !strings.HasPrefix(lines[i+1], "\t") {
			continue
		}
		i++
		if idx := strings.LastIndex(loc, " +0x"); idx > 0 {
			loc = loc[:idx]
		}
		if skipFrame(fn, loc) {
			continue
		}
		frames = append(frames, frame{fn: fn, loc: loc})
	}
	return frames
}

func skipFrame(fn, loc string) bool {
	if strings.HasPrefix(fn, "panic(") ||
		strings.HasPrefix(fn, "runtime.") ||
		strings.HasPrefix(fn, "runtime/debug.") {
		return true
	}
	if strings.Contains(loc, "/src/runtime/") {
		return true
	}
	for _, fragment := range excludedFiles() {
		if strings.Contains(loc, fragment) {
			return true
		}
	}
	return false
}
