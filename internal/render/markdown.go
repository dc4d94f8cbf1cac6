package render

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/projlens/internal/report"
)

// Markdown renders a report document as GitHub-flavored markdown.
type Markdown struct{}

// NewMarkdown creates a markdown renderer.
func NewMarkdown() *Markdown {
	return &Markdown{}
}

// Render returns the document as markdown text.
func (m *Markdown) Render(doc *report.Document) string {
	var sb strings.Builder

	sb.WriteString("# ")
	sb.WriteString(doc.Title)
	sb.WriteString("\n")
	if len(doc.Meta) > 0 {
		sb.WriteString("\n")
		for _, meta := range doc.Meta {
			fmt.Fprintf(&sb, "- **%s:** %s\n", meta.Key, meta.Value)
		}
	}

	for _, el := range doc.Elements {
		m.renderElement(&sb, el, 1)
	}

	return sb.String()
}

func (m *Markdown) renderElement(sb *strings.Builder, el report.Element, depth int) {
	switch e := el.(type) {
	case *report.Section:
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("#", depth+1))
		sb.WriteString(" ")
		sb.WriteString(e.Title)
		sb.WriteString("\n")
		for _, child := range e.Elements {
			m.renderElement(sb, child, depth+1)
		}

	case *report.Paragraph:
		sb.WriteString("\n")
		sb.WriteString(styledText(e.Text, e.Style))
		sb.WriteString("\n")

	case *report.Table:
		sb.WriteString("\n")
		if e.Title != "" {
			fmt.Fprintf(sb, "**%s**\n\n", e.Title)
		}
		sb.WriteString("| ")
		sb.WriteString(strings.Join(escapeCells(e.Headers), " | "))
		sb.WriteString(" |\n|")
		sb.WriteString(strings.Repeat(" --- |", len(e.Headers)))
		sb.WriteString("\n")
		for _, row := range e.Rows {
			sb.WriteString("| ")
			sb.WriteString(strings.Join(escapeCells(row), " | "))
			sb.WriteString(" |\n")
		}

	case *report.List:
		sb.WriteString("\n")
		if e.Title != "" {
			fmt.Fprintf(sb, "**%s**\n\n", e.Title)
		}
		for _, item := range e.Items {
			fmt.Fprintf(sb, "- %s\n", item)
		}

	case *report.KeyValueList:
		sb.WriteString("\n")
		if e.Title != "" {
			fmt.Fprintf(sb, "**%s**\n\n", e.Title)
		}
		for _, row := range e.Rows {
			fmt.Fprintf(sb, "- **%s:** %s\n", row.Key, row.Value)
		}
	}
}

// styledText maps style hints onto markdown emphasis. Hints with no
// markdown equivalent (Success, Warning, ...) render as plain text; they
// are semantic, not visual, and markdown has no channel for them.
func styledText(text string, style report.Style) string {
	switch style {
	case report.StyleBold:
		return "**" + text + "**"
	case report.StyleItalic, report.StyleDim:
		return "*" + text + "*"
	case report.StyleCode:
		return "`" + text + "`"
	default:
		return text
	}
}

// escapeCells escapes pipe characters so cell content cannot break the
// table layout.
func escapeCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.ReplaceAll(c, "|", "\\|")
	}
	return out
}
