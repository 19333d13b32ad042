// Package checker is the public entry point used by instructor check
// scripts: it runs learner code under supervision, compares results against
// expected answers, and reports Markdown diagnostics, exiting with status 1
// on any failure.
package checker

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"runtime"

	"go.uber.org/zap"

	"corrector/explain"
	appErr "corrector/pkg/errors"
	"corrector/pkg/locale"
	"corrector/pkg/markdown"
	"corrector/pkg/utils/logger"
	"corrector/supervise"
)

// Injection points for the termination primitive; swapped by tests so Fail
// is observable without killing the test process.
var (
	osExit           = os.Exit
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func init() {
	explain.SetFormatter(func(r explain.Report) string {
		return markdown.RenderSections(markdown.Catalogue, r)
	})
	// The library's own frames never appear in learner-facing tracebacks.
	if _, file, _, ok := runtime.Caller(0); ok {
		explain.ExcludeFile(filepath.Dir(file))
	}
	if fn := runtime.FuncForPC(reflect.ValueOf(supervise.With).Pointer()); fn != nil {
		file, _ := fn.FileLine(fn.Entry())
		explain.ExcludeFile(filepath.Dir(file))
	}
}

// Code transforms the given text into a Markdown code block.
func Code(text, language string) string {
	return markdown.Code(text, language)
}

// CodeOrRepr returns a short string between backticks, or a code block.
func CodeOrRepr(s string) string {
	return markdown.CodeOrRepr(s)
}

// Fail prints all non-empty messages as a Markdown failure admonition on
// stderr, paragraph-separated, and exits with status 1. Every failure path
// in the library terminates through here.
func Fail(messages ...string) {
	body := markdown.Paragraphs(messages...)
	io.WriteString(stderr, markdown.Admonition("failure", "", body))
	osExit(1)
}

// failCoded classifies the failure under an error code before rendering the
// diagnostic. Learners only see the Markdown; the code goes to the
// structured log.
func failCoded(code appErr.ErrorCode, messages ...string) {
	logger.Warn(context.Background(), "check failed",
		zap.Int("error_code", int(code)),
		zap.String("classification", code.Message()))
	Fail(messages...)
}

// Congrats generates a generic congratulation sentence in the language
// selected by the environment.
func Congrats() string {
	return locale.Congrats()
}

// Exit requests process termination from learner code; inside a supervised
// scope the attempt is intercepted and reported instead.
func Exit(code int) {
	supervise.Exit(code)
}
