package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blackwell-systems/projlens/internal/render"
	"github.com/blackwell-systems/projlens/internal/report"
)

func sampleDocument() *report.Document {
	doc := report.NewDocument("Repository Scan Report")
	doc.AddMeta("Root", "/repo")

	summary := report.NewSection("Summary", 1)
	summary.Add(&report.Paragraph{Text: "Projects found: 2", Style: report.StyleBold})
	kv := &report.KeyValueList{}
	kv.Add("Total package references", "3", report.StyleNormal)
	summary.Add(kv)
	doc.Add(summary)

	projects := report.NewSection("Projects", 1)
	tbl := &report.Table{Headers: []string{"Name", "Path"}}
	tbl.AddRow("A", "src/A|A.csproj")
	projects.Add(tbl)
	projects.Add(&report.Paragraph{Text: "legend", Style: report.StyleDim})
	doc.Add(projects)

	details := report.NewSection("Project Details", 1)
	sub := report.NewSection("A", 2)
	sub.Add(&report.List{Title: "Packages (1)", Items: []string{"X (1.0)"}})
	details.Add(sub)
	doc.Add(details)

	return doc
}

func TestMarkdown_Headings(t *testing.T) {
	out := render.NewMarkdown().Render(sampleDocument())

	assert.Contains(t, out, "# Repository Scan Report\n")
	assert.Contains(t, out, "\n## Summary\n")
	assert.Contains(t, out, "\n## Projects\n")
	assert.Contains(t, out, "\n### A\n")
}

func TestMarkdown_Meta(t *testing.T) {
	out := render.NewMarkdown().Render(sampleDocument())

	assert.Contains(t, out, "- **Root:** /repo")
}

func TestMarkdown_TableAndPipeEscaping(t *testing.T) {
	out := render.NewMarkdown().Render(sampleDocument())

	assert.Contains(t, out, "| Name | Path |")
	assert.Contains(t, out, "| --- | --- |")
	assert.Contains(t, out, `src/A\|A.csproj`)
}

func TestMarkdown_StyleMapping(t *testing.T) {
	out := render.NewMarkdown().Render(sampleDocument())

	assert.Contains(t, out, "**Projects found: 2**")
	assert.Contains(t, out, "*legend*")
}

func TestMarkdown_ListWithTitle(t *testing.T) {
	out := render.NewMarkdown().Render(sampleDocument())

	assert.Contains(t, out, "**Packages (1)**")
	assert.Contains(t, out, "- X (1.0)")
}

func TestMarkdown_KeyValueList(t *testing.T) {
	out := render.NewMarkdown().Render(sampleDocument())

	assert.Contains(t, out, "- **Total package references:** 3")
}

func TestMarkdown_SectionOrderPreserved(t *testing.T) {
	out := render.NewMarkdown().Render(sampleDocument())

	summary := strings.Index(out, "## Summary")
	projects := strings.Index(out, "## Projects")
	details := strings.Index(out, "## Project Details")
	assert.True(t, summary < projects && projects < details, "section order must be preserved")
}
