package checker

import (
	"strings"

	appErr "corrector/pkg/errors"
	"corrector/pkg/locale"
	"corrector/pkg/markdown"
)

// CompareOption customizes one comparison.
type CompareOption func(*compareOptions)

type compareOptions struct {
	preamble string
}

// WithPreamble prepends a paragraph to any comparison diagnostic.
func WithPreamble(preamble string) CompareOption {
	return func(o *compareOptions) {
		o.preamble = preamble
	}
}

// Compare checks the learner output against the expected one line by line.
// Equal inputs (after trimming) return silently; any mismatch renders a
// diagnostic naming the first differing line and terminates via Fail.
func Compare(expected, actual string, opts ...CompareOption) {
	var o compareOptions
	for _, opt := range opts {
		opt(&o)
	}

	if strings.TrimSpace(expected) == strings.TrimSpace(actual) {
		return
	}

	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")
	longest := len(expectedLines)
	if len(actualLines) > longest {
		longest = len(actualLines)
	}

	for i := 0; i < longest; i++ {
		line := i + 1
		switch {
		case i >= len(expectedLines):
			failCoded(appErr.CompareExtraLine,
				o.preamble,
				locale.Tf(locale.MsgUnexpectedLine, line)+markdown.CodeOrRepr(actualLines[i]),
				locale.T(locale.MsgFullOutput),
				markdown.Code(actual, "text"),
			)
		case i >= len(actualLines):
			failCoded(appErr.CompareMissingLine,
				o.preamble,
				locale.Tf(locale.MsgMissingLine, line)+markdown.CodeOrRepr(expectedLines[i]),
				locale.T(locale.MsgFullOutput),
				markdown.Code(actual, "text"),
			)
		case expectedLines[i] != actualLines[i]:
			failLineDiff(o.preamble, line, expectedLines[i], actualLines[i], actual)
		}
	}

	// Unreachable in practice: the loop reports the first difference. Kept
	// as a generic fallback so Compare can never return on a mismatch.
	failCoded(appErr.CompareWrongAnswer,
		o.preamble,
		locale.T(locale.MsgWrongAnswer),
		markdown.Code(expected, "text"),
		locale.T(locale.MsgWrongAnswerGave),
		markdown.Code(actual, "text"),
	)
}

func failLineDiff(preamble string, line int, expectedLine, actualLine, actual string) {
	hint := ""
	trailer := ""
	if actualLine != actual {
		trailer = locale.T(locale.MsgFullOutput) + "\n\n" + markdown.Code(actual, "text")
	}
	if expectedLine != "" && actualLine != "" {
		if actualLine[0] == ' ' && expectedLine[0] != ' ' {
			hint = locale.T(locale.MsgLeadingSpace)
		}
		if actualLine[len(actualLine)-1] == ' ' && expectedLine[len(expectedLine)-1] != ' ' {
			hint = locale.T(locale.MsgTrailingSpace)
		}
	}

	gave := locale.T(locale.MsgYouGaveNothing)
	if actualLine != "" {
		gave = locale.T(locale.MsgYouGave) + markdown.CodeOrRepr(actualLine)
	}

	failCoded(appErr.CompareWrongLine,
		preamble,
		locale.Tf(locale.MsgExpectingLine, line)+markdown.CodeOrRepr(expectedLine),
		gave,
		hint,
		trailer,
	)
}
