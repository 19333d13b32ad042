package markdown

import "strings"

// Section describes one named field of an explanation report and how it is
// rendered: a Markdown prefix (heading markup), an optional suffix, and an
// optional syntax-highlight tag for fenced bodies. Highlight "indent" wraps
// the body as a plain indented block without a language tag.
type Section struct {
	Name      string
	Prefix    string
	Suffix    string
	Highlight string
}

// Catalogue is the fixed, ordered list of sections assembled into one
// Markdown document when rendering an explanation report.
var Catalogue = []Section{
	{Name: "header", Prefix: "## "},
	{Name: "traceback", Highlight: "text"},
	{Name: "suggest"},
	{Name: "generic"},
	{Name: "cause_header", Prefix: "### "},
	{Name: "cause"},
	{Name: "last_call_header", Prefix: "### "},
	{Name: "last_call_source", Highlight: "go"},
	{Name: "last_call_variables", Highlight: "indent"},
}

// RenderSections assembles the sections present in report, in catalogue
// order, into a single Markdown document. Headings never end with a colon.
func RenderSections(catalogue []Section, report map[string]string) string {
	var result []string
	for _, item := range catalogue {
		line, ok := report[item.Name]
		if !ok || line == "" {
			continue
		}
		if strings.HasPrefix(item.Prefix, "#") {
			line = strings.TrimRight(line, ": ")
		}
		switch item.Highlight {
		case "":
		case "indent":
			line = Indent(line, "    ")
		default:
			line = "    :::" + item.Highlight + "\n" + Indent(line, "    ")
		}
		result = append(result, item.Prefix+line+item.Suffix+"\n\n")
	}
	return strings.Join(result, "\n")
}
