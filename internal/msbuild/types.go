// Package msbuild parses MSBuild project files (*.csproj) into metadata
// records. Parsing is fault-isolated: a broken file yields a record with
// identity fields set and diagnostics attached, never an error.
package msbuild

// DefaultOutputType is substituted when a project declares no OutputType.
const DefaultOutputType = "Library"

// UnknownValue is substituted for missing package name/version attributes.
const UnknownValue = "unknown"

// Package is a declared package dependency. Two Packages are equal when
// their fields are equal; treat it as a value.
type Package struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Project is the metadata extracted from one project file. Identity fields
// (AbsPath, Name, RelPath) are always populated, even when parsing failed;
// every other field has a documented default. Records are created once per
// discovered file and not mutated afterwards.
type Project struct {
	// AbsPath is the absolute path to the project file.
	AbsPath string `json:"abs_path"`

	// Name is the file name without the extension.
	Name string `json:"name"`

	// RelPath is the path relative to the scan root.
	RelPath string `json:"rel_path"`

	// TargetFramework is the declared target framework, if any.
	TargetFramework string `json:"target_framework,omitempty"`

	// OutputType is the declared output type, defaulting to "Library".
	OutputType string `json:"output_type"`

	// Nullable reports whether nullable reference types are enabled
	// (the property value equals "enable", case-insensitively).
	Nullable bool `json:"nullable"`

	// ImplicitUsings reports whether implicit usings are enabled
	// (same "enable" rule as Nullable).
	ImplicitUsings bool `json:"implicit_usings"`

	// LangVersion is the declared language version, if any.
	LangVersion string `json:"lang_version,omitempty"`

	// GenerateDocs reports whether documentation file generation is
	// enabled (the property value equals "true", case-insensitively).
	GenerateDocs bool `json:"generate_docs"`

	// Packages lists the declared package references in document order.
	Packages []Package `json:"packages,omitempty"`

	// ProjectReferences is the number of project-to-project references.
	ProjectReferences int `json:"project_references"`

	// ParseErrors holds diagnostics; non-empty only when parsing failed.
	ParseErrors []string `json:"parse_errors,omitempty"`
}
