package checker

import (
	"io"

	"corrector/pkg/locale"
	"corrector/pkg/markdown"
)

// PrintAllowedHook echoes whatever the learner code printed, prefixed by the
// given messages, and lets the check continue.
func PrintAllowedHook(messages ...string) PrintHook {
	if len(messages) == 0 {
		messages = []string{locale.T(locale.MsgCodePrinted)}
	}
	return func(out, err string) {
		if out == "" && err == "" {
			return
		}
		body := append([]string(nil), messages...)
		if err != "" {
			body = append(body, markdown.Code(err, "text"))
		}
		if out != "" {
			body = append(body, markdown.Code(out, "text"))
		}
		io.WriteString(stdout, markdown.Paragraphs(body...)+"\n")
	}
}

// PrintDeniedHook fails the check when the learner code printed anything.
func PrintDeniedHook(messages ...string) PrintHook {
	if len(messages) == 0 {
		messages = []string{locale.T(locale.MsgCodePrinted)}
	}
	return func(out, err string) {
		if out == "" && err == "" {
			return
		}
		body := append([]string(nil), messages...)
		if err != "" {
			body = append(body, markdown.Code(err, "text"))
		}
		if out != "" {
			body = append(body, markdown.Code(out, "text"))
		}
		Fail(body...)
	}
}

// PrintSilentHook ignores whatever the learner code printed; the captured
// text stays available on the Run.
func PrintSilentHook() PrintHook {
	return func(out, err string) {}
}

// PrintToAdmonitionHook renders printed output as a Markdown admonition of
// the given kind on stdout, without failing the check.
func PrintToAdmonitionHook(kind string, header ...string) PrintHook {
	if kind == "" {
		kind = "info"
	}
	if len(header) == 0 {
		header = []string{locale.T(locale.MsgCodePrinted)}
	}
	return func(out, err string) {
		if out == "" && err == "" {
			return
		}
		body := append([]string(nil), header...)
		body = append(body, markdown.Code(out+"\n"+err, "text"))
		io.WriteString(stdout, markdown.Admonition(kind, "", body...))
	}
}
