// Package render turns a report document into presentation-specific output.
// Renderers walk the document tree and map style hints to their own medium;
// they never reorder sections or elements.
package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/projlens/internal/report"
)

// Color constants shared by the console renderer.
var (
	colorPrimary = lipgloss.Color("#64b5f6")
	colorSuccess = lipgloss.Color("#66bb6a")
	colorError   = lipgloss.Color("#ef5350")
	colorWarning = lipgloss.Color("#fff59d")
	colorMuted   = lipgloss.Color("#888888")
)

// IsTerminal reports whether f is attached to a terminal; the console
// renderer uses it to decide whether color output makes sense.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Console renders a report document as styled terminal text.
type Console struct {
	styles  map[report.Style]lipgloss.Style
	heading lipgloss.Style
	muted   lipgloss.Style
}

// NewConsole creates a console renderer. With color disabled every style
// hint degrades to plain text.
func NewConsole(color bool) *Console {
	plain := lipgloss.NewStyle()
	c := &Console{
		styles: map[report.Style]lipgloss.Style{
			report.StyleNormal:  plain,
			report.StyleBold:    plain,
			report.StyleItalic:  plain,
			report.StyleCode:    plain,
			report.StyleSuccess: plain,
			report.StyleWarning: plain,
			report.StyleError:   plain,
			report.StyleInfo:    plain,
			report.StyleDim:     plain,
		},
		heading: plain,
		muted:   plain,
	}
	if !color {
		return c
	}

	c.styles[report.StyleBold] = lipgloss.NewStyle().Bold(true)
	c.styles[report.StyleItalic] = lipgloss.NewStyle().Italic(true)
	c.styles[report.StyleCode] = lipgloss.NewStyle().Foreground(colorPrimary)
	c.styles[report.StyleSuccess] = lipgloss.NewStyle().Foreground(colorSuccess)
	c.styles[report.StyleWarning] = lipgloss.NewStyle().Foreground(colorWarning)
	c.styles[report.StyleError] = lipgloss.NewStyle().Foreground(colorError)
	c.styles[report.StyleInfo] = lipgloss.NewStyle().Foreground(colorPrimary)
	c.styles[report.StyleDim] = lipgloss.NewStyle().Foreground(colorMuted)
	c.heading = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	c.muted = lipgloss.NewStyle().Foreground(colorMuted)
	return c
}

// Render returns the document formatted for the terminal.
func (c *Console) Render(doc *report.Document) string {
	var sb strings.Builder

	sb.WriteString(c.heading.Render(doc.Title))
	sb.WriteString("\n")
	for _, m := range doc.Meta {
		sb.WriteString(c.muted.Render(fmt.Sprintf("%s: %s", m.Key, m.Value)))
		sb.WriteString("\n")
	}

	for _, el := range doc.Elements {
		c.renderElement(&sb, el, 0)
	}

	return sb.String()
}

func (c *Console) renderElement(sb *strings.Builder, el report.Element, indent int) {
	pad := strings.Repeat("  ", indent)

	switch e := el.(type) {
	case *report.Section:
		sb.WriteString("\n")
		sb.WriteString(pad)
		sb.WriteString(c.heading.Render(e.Title))
		sb.WriteString("\n")
		for _, child := range e.Elements {
			c.renderElement(sb, child, indent+1)
		}

	case *report.Paragraph:
		sb.WriteString(pad)
		sb.WriteString(c.styles[e.Style].Render(e.Text))
		sb.WriteString("\n")

	case *report.Table:
		if e.Title != "" {
			sb.WriteString(pad)
			sb.WriteString(c.styles[report.StyleBold].Render(e.Title))
			sb.WriteString("\n")
		}
		c.renderTable(sb, e, pad)

	case *report.List:
		if e.Title != "" {
			sb.WriteString(pad)
			sb.WriteString(c.styles[report.StyleBold].Render(e.Title))
			sb.WriteString("\n")
		}
		for _, item := range e.Items {
			sb.WriteString(pad)
			sb.WriteString("• ")
			sb.WriteString(item)
			sb.WriteString("\n")
		}

	case *report.KeyValueList:
		if e.Title != "" {
			sb.WriteString(pad)
			sb.WriteString(c.styles[report.StyleBold].Render(e.Title))
			sb.WriteString("\n")
		}
		width := 0
		for _, row := range e.Rows {
			if w := lipgloss.Width(row.Key); w > width {
				width = w
			}
		}
		for _, row := range e.Rows {
			sb.WriteString(pad)
			sb.WriteString(padRight(row.Key, width))
			sb.WriteString("  ")
			sb.WriteString(c.styles[row.Style].Render(row.Value))
			sb.WriteString("\n")
		}
	}
}

// renderTable lays the table out with padded columns, a styled header row
// and a muted separator line.
func (c *Console) renderTable(sb *strings.Builder, t *report.Table, pad string) {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	sb.WriteString(pad)
	for i, h := range t.Headers {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(c.heading.Render(padRight(h, widths[i])))
	}
	sb.WriteString("\n")

	sb.WriteString(pad)
	for i, w := range widths {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(c.muted.Render(strings.Repeat("─", w)))
	}
	sb.WriteString("\n")

	for _, row := range t.Rows {
		sb.WriteString(pad)
		for i, cell := range row {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(padRight(cell, widths[i]))
		}
		sb.WriteString("\n")
	}
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
