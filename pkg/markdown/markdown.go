// Package markdown renders learner-facing diagnostics as Markdown fragments.
package markdown

import (
	"fmt"
	"strings"
)

// Indent prefixes every non-empty line of text with the given prefix.
func Indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line == "" {
			continue
		}
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// Code transforms the given text into a Markdown code block.
func Code(text, language string) string {
	if language == "" {
		language = "text"
	}
	return "    :::" + language + "\n" + Indent(text, "    ")
}

// CodeOrRepr displays some string for a student. Short backtick-free strings
// are returned inline between backticks, anything else as a code block on its
// own paragraph.
func CodeOrRepr(s string) string {
	if len(s) < 10 && !strings.Contains(s, "`") {
		return fmt.Sprintf(" `%s`", s)
	}
	return "\n\n" + Code(s, "text")
}

// Admonition builds a Markdown admonition block with the given body
// paragraphs indented under it. Empty paragraphs are dropped.
func Admonition(kind, title string, body ...string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "!!! %s %q\n", kind, title)
	for _, item := range body {
		if item == "" {
			continue
		}
		sb.WriteString("\n")
		sb.WriteString(Indent(item, "    "))
		sb.WriteString("\n")
	}
	return sb.String()
}

// Paragraphs joins the non-empty messages with Markdown paragraph breaks.
func Paragraphs(messages ...string) string {
	kept := messages[:0:0]
	for _, m := range messages {
		if m != "" {
			kept = append(kept, m)
		}
	}
	return strings.Join(kept, "\n\n")
}
