package explain

import (
	"errors"
	"runtime/debug"
	"strings"
	"testing"
)

func grab() []byte {
	return debug.Stack()
}

func TestExplainProducesTraceback(t *testing.T) {
	report := Explain("boom", grab())
	tb, ok := report["traceback"]
	if !ok {
		t.Fatal("report misses the traceback section")
	}
	if !strings.HasPrefix(tb, "Traceback (most recent call last):\n") {
		t.Errorf("traceback = %q, want the heading first", tb)
	}
	if !strings.HasSuffix(tb, "panic: boom") {
		t.Errorf("traceback = %q, want the panic value last", tb)
	}
	if !strings.Contains(tb, "explain.grab") {
		t.Errorf("traceback %q misses the capturing frame", tb)
	}
}

func TestExplainHeader(t *testing.T) {
	report := Explain(errors.New("boom"), grab())
	if got := report["header"]; got != "errors.errorString" {
		t.Errorf("header = %q, want the error type", got)
	}
	report = Explain("boom", grab())
	if got := report["header"]; got != "panic" {
		t.Errorf("header = %q, want %q", got, "panic")
	}
}

func TestExplainFiltersRuntimeFrames(t *testing.T) {
	report := Explain("boom", grab())
	if strings.Contains(report["traceback"], "runtime/debug.Stack") {
		t.Errorf("runtime frames leaked into %q", report["traceback"])
	}
}

func TestExcludeFile(t *testing.T) {
	stack := grab()
	before := Explain("boom", stack)
	if !strings.Contains(before["traceback"], "explain.grab") {
		t.Fatalf("capturing frame missing before exclusion: %q", before["traceback"])
	}

	ExcludeFile("/explain/")
	defer func() {
		mu.Lock()
		excluded = nil
		mu.Unlock()
	}()

	after := Explain("boom", stack)
	if strings.Contains(after["traceback"], "explain.grab") {
		t.Errorf("excluded frame still present: %q", after["traceback"])
	}
}

func TestRenderUsesFormatter(t *testing.T) {
	SetFormatter(func(r Report) string { return "custom:" + r["header"] })
	defer SetFormatter(func(r Report) string { return r["traceback"] })

	got := Render(Report{"header": "x"})
	if got != "custom:x" {
		t.Errorf("Render() = %q, want %q", got, "custom:x")
	}
}

type fixedExplainer struct{}

func (fixedExplainer) Explain(value any, stack []byte) Report {
	return Report{"generic": "it broke"}
}

func TestSetExplainer(t *testing.T) {
	SetExplainer(fixedExplainer{})
	defer SetExplainer(&tracebackExplainer{})

	report := Explain("whatever", nil)
	if report["generic"] != "it broke" {
		t.Errorf("report = %v, want the injected explainer's output", report)
	}
}

func TestParseFramesTrimsOffsets(t *testing.T) {
	stack := []byte("goroutine 1 [running]:\n" +
		"main.work(0x2)\n" +
		"\t/tmp/prog/main.go:12 +0x45\n" +
		"main.main()\n" +
		"\t/tmp/prog/main.go:5 +0x1d\n")
	frames := parseFrames(stack)
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}
	if frames[0].loc != "/tmp/prog/main.go:12" {
		t.Errorf("loc = %q, want the +0x offset trimmed", frames[0].loc)
	}
	if frames[0].fn != "main.work(0x2)" {
		t.Errorf("fn = %q", frames[0].fn)
	}
}
