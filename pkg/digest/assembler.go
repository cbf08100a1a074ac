package digest

import "strings"

// MarkdownAssembler formats digest items as a Markdown post with an optional
// header and footer around a bullet list.
type MarkdownAssembler struct {
	Header string
	Footer string
}

// Assemble builds the final post text from the parsed digest items
func (a *MarkdownAssembler) Assemble(items []string) string {
	var sb strings.Builder

	if a.Header != "" {
		sb.WriteString(a.Header)
		sb.WriteString("\n\n")
	}

	for i, item := range items {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("- ")
		sb.WriteString(item)
	}

	if a.Footer != "" {
		if len(items) > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(a.Footer)
	}

	return strings.TrimSpace(sb.String())
}
