// Package analysis computes repository-wide metrics from scanned project
// records and assembles them into a report document.
package analysis

import "github.com/blackwell-systems/projlens/internal/msbuild"

// Summary holds the derived repository-wide counts. All values are pure
// functions of the record collection.
type Summary struct {
	// TotalProjects is the number of scanned records, failed parses included.
	TotalProjects int `json:"total_projects"`

	// TotalPackages sums package references across all projects. The same
	// package declared by several projects counts once per project; the
	// sum is deliberately not deduplicated.
	TotalPackages int `json:"total_packages"`

	// NullableEnabled counts projects with nullable reference types on.
	NullableEnabled int `json:"nullable_enabled"`

	// ImplicitUsingsEnabled counts projects with implicit usings on.
	ImplicitUsingsEnabled int `json:"implicit_usings_enabled"`

	// DocsEnabled counts projects generating a documentation file.
	DocsEnabled int `json:"docs_enabled"`

	// WithErrors lists the records that carry parse diagnostics, in scan order.
	WithErrors []msbuild.Project `json:"-"`
}

// Summarize derives the repository summary from the record collection.
func Summarize(projects []msbuild.Project) Summary {
	var s Summary
	s.TotalProjects = len(projects)
	for _, p := range projects {
		s.TotalPackages += len(p.Packages)
		if p.Nullable {
			s.NullableEnabled++
		}
		if p.ImplicitUsings {
			s.ImplicitUsingsEnabled++
		}
		if p.GenerateDocs {
			s.DocsEnabled++
		}
		if len(p.ParseErrors) > 0 {
			s.WithErrors = append(s.WithErrors, p)
		}
	}
	return s
}
