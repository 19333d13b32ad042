package checker

import (
	"context"
	"io"
	"strings"
	"time"

	"corrector/config"
	"corrector/explain"
	"corrector/pkg/locale"
	"corrector/pkg/markdown"
	"corrector/supervise"
)

// PrintPolicy decides what happens to output the learner code printed when
// the supervised block otherwise succeeded.
type PrintPolicy int

const (
	// PrintsAllowed echoes captured output and continues.
	PrintsAllowed PrintPolicy = iota
	// PrintsDenied echoes captured output and fails the check.
	PrintsDenied
	// PrintsHidden keeps captured output on the Run only.
	PrintsHidden
)

// PrintHook receives the captured stdout and stderr after a successful block
// and takes over the print policy entirely.
type PrintHook func(out, err string)

// Options configures one supervised execution of learner code.
type Options struct {
	// Prefix paragraphs are prepended to every diagnostic of this scope.
	Prefix []string
	// ExceptionPrefix paragraphs precede a rendered traceback.
	ExceptionPrefix []string
	// PrintPrefix paragraphs precede echoed output; defaults to the
	// localized "Your code printed:".
	PrintPrefix []string
	// PrintExpect marks output that matches the expected return value, to
	// nudge learners who print instead of returning.
	PrintExpect string
	// Hook, if set, takes precedence over Policy.
	Hook PrintHook
	// Policy defaults to PrintsAllowed.
	Policy PrintPolicy
	// TooSlow paragraphs replace the localized timeout message.
	TooSlow []string
	// Timeout is the wall-clock deadline; zero means one second.
	Timeout time.Duration
}

// OptionsFrom maps an exercise configuration onto supervision options:
// timeout, print policy and the message overrides.
func OptionsFrom(cfg *config.Exercise) Options {
	opts := Options{Timeout: cfg.Timeout}
	switch cfg.PrintPolicy {
	case "denied":
		opts.Policy = PrintsDenied
	case "hidden":
		opts.Policy = PrintsHidden
	}
	if cfg.Messages.TooSlow != "" {
		opts.TooSlow = []string{cfg.Messages.TooSlow}
	}
	if cfg.Messages.PrintPrefix != "" {
		opts.PrintPrefix = []string{cfg.Messages.PrintPrefix}
	}
	return opts
}

// SupervisedWith is Supervised under an exercise configuration: the
// configured timeout, print policy and message overrides apply wherever
// opts leaves them unset.
func SupervisedWith(ctx context.Context, cfg *config.Exercise, opts Options, body func() error) *supervise.Run {
	base := OptionsFrom(cfg)
	if opts.Timeout <= 0 {
		opts.Timeout = base.Timeout
	}
	if opts.Policy == PrintsAllowed {
		opts.Policy = base.Policy
	}
	if len(opts.TooSlow) == 0 {
		opts.TooSlow = base.TooSlow
	}
	if len(opts.PrintPrefix) == 0 {
		opts.PrintPrefix = base.PrintPrefix
	}
	return Supervised(ctx, opts, body)
}

// Supervised runs body under a supervision scope and reports any abnormal
// termination as a Markdown diagnostic, terminating the process. On success
// it applies the print policy and returns the Run with the captured output.
//
// Typical usage:
//
//	run := checker.Supervised(ctx, checker.Options{Policy: checker.PrintsHidden}, func() error {
//		theirValue = theirFunction(argument)
//		return nil
//	})
//	_ = run.Out() // what they wrote on stdout, stripped
func Supervised(ctx context.Context, opts Options, body func() error) *supervise.Run {
	run, verdict := supervise.With(ctx, supervise.Options{Timeout: opts.Timeout}, body)

	switch verdict.Outcome {
	case supervise.OutcomeOK:
		handlePrints(run, opts)
		return run
	case supervise.OutcomeTimeout:
		tooSlow := opts.TooSlow
		if len(tooSlow) == 0 {
			tooSlow = []string{locale.T(locale.MsgTooSlow)}
		}
		Fail(prefixed(opts.Prefix, tooSlow...)...)
	case supervise.OutcomeAttemptedExit:
		Fail(locale.T(locale.MsgAttemptedExit))
	case supervise.OutcomeBlockedInput:
		Fail(locale.T(locale.MsgBlockedInput))
	case supervise.OutcomeMemoryExhaustion:
		Fail(prefixed(opts.Prefix, locale.T(locale.MsgOutOfMemory))...)
	case supervise.OutcomePanic:
		reportStudentException(opts, verdict)
	default:
		Fail(verdict.Err.Error())
	}
	return run
}

// reportStudentException renders the learner's panic as a Markdown
// traceback through the explainer collaborator, then terminates.
func reportStudentException(opts Options, verdict supervise.Verdict) {
	prefix := prefixed(opts.Prefix, opts.ExceptionPrefix...)
	if body := markdown.Paragraphs(prefix...); body != "" {
		io.WriteString(stderr, body+"\n\n")
	}
	report := explain.Explain(verdict.PanicValue, verdict.Stack)
	io.WriteString(stderr, explain.Render(report))
	osExit(1)
}

func handlePrints(run *supervise.Run, opts Options) {
	out, errText := run.Out(), run.Err()
	if opts.Hook != nil {
		opts.Hook(out, errText)
		return
	}
	if out == "" && errText == "" {
		return
	}

	if opts.PrintExpect != "" && out == strings.TrimSpace(opts.PrintExpect) {
		Fail(prefixed(opts.Prefix,
			locale.T(locale.MsgPrintedExpect),
			markdown.Code(out, "text"))...)
	}

	printPrefix := opts.PrintPrefix
	if len(printPrefix) == 0 {
		printPrefix = []string{locale.T(locale.MsgCodePrinted)}
	}
	messages := prefixed(opts.Prefix, printPrefix...)
	if errText != "" {
		messages = append(messages, markdown.Code(errText, "text"))
	}
	if out != "" {
		messages = append(messages, markdown.Code(out, "text"))
	}

	switch opts.Policy {
	case PrintsHidden:
	case PrintsDenied:
		Fail(messages...)
	default:
		io.WriteString(stdout, markdown.Paragraphs(messages...)+"\n")
	}
}

// prefixed prepends the scope prefix paragraphs to a message.
func prefixed(prefix []string, messages ...string) []string {
	out := make([]string, 0, len(prefix)+len(messages))
	out = append(out, prefix...)
	out = append(out, messages...)
	return out
}
