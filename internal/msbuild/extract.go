package msbuild

import (
	"encoding/xml"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// node is a generic XML element. Unmarshaling into it preserves the full
// element tree with resolved namespaces, which lets property lookups stay
// namespace-aware without dedicated structs per schema.
type node struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []node     `xml:",any"`
	Text     string     `xml:",chardata"`
}

// Extract parses the project file at path into a Project. It never fails:
// any load or parse problem is recorded in ParseErrors and the record is
// returned with identity fields populated and all defaults applied.
// root is the scan root used to derive the relative path.
func Extract(path, root string) Project {
	p := Project{
		AbsPath:    path,
		Name:       strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		RelPath:    relativeTo(root, path),
		OutputType: DefaultOutputType,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		p.ParseErrors = append(p.ParseErrors, err.Error())
		return p
	}

	var doc node
	if err := xml.Unmarshal(data, &doc); err != nil {
		if errors.Is(err, io.EOF) {
			p.ParseErrors = append(p.ParseErrors, "no root element")
		} else {
			p.ParseErrors = append(p.ParseErrors, err.Error())
		}
		return p
	}

	// The root's resolved namespace is the document's default namespace;
	// all element lookups below are qualified against it.
	ns := namespace{doc.XMLName.Space}

	if group := ns.firstChild(&doc, "PropertyGroup"); group != nil {
		p.TargetFramework = ns.childText(group, "TargetFramework")
		if v := ns.childText(group, "OutputType"); v != "" {
			p.OutputType = v
		}
		p.Nullable = strings.EqualFold(ns.childText(group, "Nullable"), "enable")
		p.ImplicitUsings = strings.EqualFold(ns.childText(group, "ImplicitUsings"), "enable")
		p.LangVersion = ns.childText(group, "LangVersion")
		p.GenerateDocs = strings.EqualFold(ns.childText(group, "GenerateDocumentationFile"), "true")
	}

	// References may live in any ItemGroup (or anywhere else); collect
	// them from the whole tree in document order.
	ns.walk(&doc, func(n *node) {
		switch n.XMLName.Local {
		case "PackageReference":
			p.Packages = append(p.Packages, Package{
				Name:    attrOr(n, "Include", UnknownValue),
				Version: attrOr(n, "Version", UnknownValue),
			})
		case "ProjectReference":
			p.ProjectReferences++
		}
	})

	return p
}

// namespace qualifies element lookups against a document's default
// namespace (possibly empty).
type namespace struct {
	uri string
}

// firstChild returns the first direct child with the given local name in
// this namespace, or nil.
func (ns namespace) firstChild(n *node, name string) *node {
	for i := range n.Children {
		c := &n.Children[i]
		if c.XMLName.Local == name && c.XMLName.Space == ns.uri {
			return c
		}
	}
	return nil
}

// childText returns the trimmed text content of the first matching child,
// or "" when the element is absent.
func (ns namespace) childText(n *node, name string) string {
	c := ns.firstChild(n, name)
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.Text)
}

// walk visits every descendant of n (not n itself) in document order,
// skipping elements outside the default namespace.
func (ns namespace) walk(n *node, visit func(*node)) {
	for i := range n.Children {
		c := &n.Children[i]
		if c.XMLName.Space == ns.uri {
			visit(c)
		}
		ns.walk(c, visit)
	}
}

// attrOr returns the value of the named attribute, or fallback when the
// attribute is missing.
func attrOr(n *node, name, fallback string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return fallback
}

// relativeTo derives path relative to root, falling back to the absolute
// path when the two do not share a base.
func relativeTo(root, path string) string {
	if root == "" {
		return path
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
