package checker

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"corrector/config"
	appErr "corrector/pkg/errors"
	"corrector/pkg/locale"
	"corrector/pkg/markdown"
	"corrector/runner"
)

// Run spawns the given program with the default exercise configuration,
// failing with a Markdown diagnostic on any abnormal exit. On success it
// returns the child's stdout, trimmed of trailing whitespace.
func Run(ctx context.Context, file string, args ...string) string {
	return RunWith(ctx, config.Default(), file, args...)
}

// RunWith is Run with an explicit exercise configuration.
func RunWith(ctx context.Context, cfg *config.Exercise, file string, args ...string) string {
	startHint := ""
	if len(args) > 0 {
		startHint = locale.T(locale.MsgStartedAs) + "\n\n" +
			markdown.Code(file+" "+quoteArgs(args), "text")
	}

	res, err := runner.Execute(ctx, runner.Spec{
		Path:             file,
		Args:             args,
		Timeout:          cfg.RunTimeout,
		MemoryLimitBytes: cfg.MemoryLimitMB << 20,
	})
	if err != nil {
		if strings.Contains(err.Error(), "cannot allocate memory") {
			failCoded(appErr.RunResourceKilled, locale.T(locale.MsgEatingMemory), startHint)
		}
		failCoded(appErr.GetCode(err), err.Error(), startHint)
	}

	stdoutBlock := ""
	if res.Stdout != "" {
		stdoutBlock = locale.T(locale.MsgCodePrinted) + "\n\n" +
			markdown.Code(markdown.Truncate(res.Stdout), "text")
	}
	stderrBlock := ""
	if res.Stderr != "" {
		stderrBlock = locale.T(locale.MsgFoundOnStderr) + "\n\n" +
			markdown.Code(markdown.Truncate(res.Stderr), "text")
	}

	if res.ResourceKilled {
		failCoded(appErr.RunResourceKilled,
			locale.T(locale.MsgHalted),
			locale.T(locale.MsgHaltedWhy),
			locale.T(locale.MsgHaltedHint),
			startHint,
			stdoutBlock,
			stderrBlock,
		)
	}
	if res.ExitCode != 0 {
		failCoded(appErr.RunNonZeroExit,
			locale.Tf(locale.MsgExitedWithCode, res.ExitCode),
			startHint,
			stdoutBlock,
			stderrBlock,
		)
	}
	if res.Stderr != "" {
		if strings.Contains(res.Stderr, "EOF when reading") && sourceReadsStdin(file) {
			failCoded(appErr.RunBlockedInput, locale.T(locale.MsgBlockedInput))
		}
		failCoded(appErr.RunStderrOutput, res.Stderr)
	}
	return strings.TrimRight(res.Stdout, " \t\r\n")
}

// RunC compiles a C source with the configured compile template, then runs
// the produced binary through RunWith. Compilation failures are reported
// with the compiler's stderr.
func RunC(ctx context.Context, cfg *config.Exercise, source string, args ...string) string {
	binDir, err := os.MkdirTemp("", "corrector-"+uuid.NewString()[:8])
	if err != nil {
		Fail(err.Error())
	}
	bin := filepath.Join(binDir, "main")

	argv, err := cfg.Compile.CompileCommand(source, bin)
	if err != nil {
		Fail(err.Error())
	}

	res, err := runner.Execute(ctx, runner.Spec{
		Path:    argv[0],
		Args:    argv[1:],
		Timeout: cfg.RunTimeout,
		// Compilers get room to breathe.
		MemoryLimitBytes: -1,
	})
	if err != nil {
		failCoded(appErr.GetCode(err), err.Error())
	}
	if res.ExitCode != 0 {
		failCoded(appErr.RunCompileFailed,
			locale.Tf(locale.MsgExitedWithCode, res.ExitCode),
			markdown.Code(markdown.Truncate(res.Stderr), "text"),
		)
	}
	return RunWith(ctx, cfg, bin, args...)
}

// quoteArgs renders an argv the way a shell user would retype it.
func quoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = shellQuote(arg)
	}
	return strings.Join(quoted, " ")
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if strings.IndexFunc(s, func(r rune) bool {
		return !strings.ContainsRune("abcdefghijklmnopqrstuvwxyz"+
			"ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"+
			"-_./=:,@%+", r)
	}) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// sourceReadsStdin checks whether the program's source mentions an
// input-reading call. Heuristic only, used to turn an EOF complaint on
// stderr into the blocked-input message.
func sourceReadsStdin(file string) bool {
	data, err := os.ReadFile(file)
	if err != nil {
		return false
	}
	text := string(data)
	for _, marker := range []string{
		"input", "scanf", "gets", "os.Stdin", "Scan", "cin",
	} {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}
