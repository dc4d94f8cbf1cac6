package analysis

import (
	"fmt"
	"strconv"

	"github.com/blackwell-systems/projlens/internal/msbuild"
	"github.com/blackwell-systems/projlens/internal/report"
)

// maxPackageLines is how many package references a project detail section
// lists before truncating with an "... and n more" item.
const maxPackageLines = 5

// BuildReport assembles the report document for a scanned record collection.
// It performs no I/O and is deterministic: identical collections produce
// identical documents. Metadata such as the scan timestamp is attached by
// the caller so this property holds.
func BuildReport(projects []msbuild.Project) *report.Document {
	s := Summarize(projects)

	doc := report.NewDocument("Repository Scan Report")
	doc.Add(buildSummary(s))

	if s.TotalProjects > 0 {
		doc.Add(buildProjectsTable(projects))
		doc.Add(buildProjectDetails(projects))
	} else {
		notice := report.NewSection("Notice", 1)
		notice.Add(&report.Paragraph{
			Text:  "No project files were found under the scan root.",
			Style: report.StyleWarning,
		})
		doc.Add(notice)
	}

	if len(s.WithErrors) > 0 {
		doc.Add(buildParseErrors(s.WithErrors))
	}

	return doc
}

func buildSummary(s Summary) *report.Section {
	sec := report.NewSection("Summary", 1)

	countStyle := report.StyleBold
	if s.TotalProjects == 0 {
		countStyle = report.StyleWarning
	}
	sec.Add(&report.Paragraph{
		Text:  fmt.Sprintf("Projects found: %d", s.TotalProjects),
		Style: countStyle,
	})

	if s.TotalProjects == 0 {
		return sec
	}

	kv := &report.KeyValueList{}
	kv.Add("Total package references", strconv.Itoa(s.TotalPackages), report.StyleNormal)
	addGap(kv, "Projects without nullable", s.TotalProjects-s.NullableEnabled)
	addGap(kv, "Projects without implicit usings", s.TotalProjects-s.ImplicitUsingsEnabled)
	addGap(kv, "Projects without documentation", s.TotalProjects-s.DocsEnabled)
	sec.Add(kv)

	return sec
}

// addGap records how many projects lack a setting. A nonzero gap is an
// actionable finding and is highlighted as such.
func addGap(kv *report.KeyValueList, key string, gap int) {
	style := report.StyleWarning
	if gap != 0 {
		style = report.StyleSuccess
	}
	kv.Add(key, strconv.Itoa(gap), style)
}

func buildProjectsTable(projects []msbuild.Project) *report.Section {
	sec := report.NewSection("Projects", 1)

	tbl := &report.Table{
		Headers: []string{"Name", "Path", "Framework", "Output Type", "Packages", "Settings"},
	}
	for _, p := range projects {
		tbl.AddRow(
			p.Name,
			p.RelPath,
			orUnknown(p.TargetFramework),
			orUnknown(p.OutputType),
			strconv.Itoa(len(p.Packages)),
			settingsCell(p),
		)
	}
	sec.Add(tbl)

	sec.Add(&report.Paragraph{
		Text:  "Settings: ✓N = nullable, ✓U = implicit usings, ✓D = documentation file",
		Style: report.StyleDim,
	})

	return sec
}

// settingsCell renders the enabled booleans as space-joined short codes,
// or "-" when none are enabled.
func settingsCell(p msbuild.Project) string {
	cell := ""
	for _, c := range []struct {
		on   bool
		code string
	}{
		{p.Nullable, "✓N"},
		{p.ImplicitUsings, "✓U"},
		{p.GenerateDocs, "✓D"},
	} {
		if !c.on {
			continue
		}
		if cell != "" {
			cell += " "
		}
		cell += c.code
	}
	if cell == "" {
		return "-"
	}
	return cell
}

func buildProjectDetails(projects []msbuild.Project) *report.Section {
	sec := report.NewSection("Project Details", 1)

	for _, p := range projects {
		detail := report.NewSection(p.Name, 2)

		kv := &report.KeyValueList{}
		kv.Add("Path", p.RelPath, report.StyleNormal)
		kv.Add("Output Type", orUnknown(p.OutputType), report.StyleNormal)
		kv.Add("Framework", orUnknown(p.TargetFramework), report.StyleNormal)
		kv.Add("Language Version", orDefault(p.LangVersion), report.StyleNormal)
		addBool(kv, "Nullable", p.Nullable)
		addBool(kv, "Implicit Usings", p.ImplicitUsings)
		addBool(kv, "Documentation", p.GenerateDocs)
		detail.Add(kv)

		if n := len(p.Packages); n > 0 {
			list := &report.List{Title: fmt.Sprintf("Packages (%d)", n)}
			for i, pkg := range p.Packages {
				if i == maxPackageLines {
					list.Items = append(list.Items, fmt.Sprintf("... and %d more", n-maxPackageLines))
					break
				}
				list.Items = append(list.Items, fmt.Sprintf("%s (%s)", pkg.Name, pkg.Version))
			}
			detail.Add(list)
		}

		if p.ProjectReferences > 0 {
			detail.Add(&report.Paragraph{
				Text:  fmt.Sprintf("References %d other project(s) in this repository", p.ProjectReferences),
				Style: report.StyleInfo,
			})
		}

		sec.Add(detail)
	}

	return sec
}

func buildParseErrors(failed []msbuild.Project) *report.Section {
	sec := report.NewSection("Parse Errors", 1)
	for _, p := range failed {
		sec.Add(&report.List{Title: p.Name, Items: p.ParseErrors})
	}
	return sec
}

func addBool(kv *report.KeyValueList, key string, on bool) {
	if on {
		kv.Add(key, "✓", report.StyleSuccess)
	} else {
		kv.Add(key, "✗", report.StyleWarning)
	}
}

func orUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}

func orDefault(v string) string {
	if v == "" {
		return "default"
	}
	return v
}
