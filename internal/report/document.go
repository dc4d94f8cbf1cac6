// Package report defines a renderer-agnostic document tree. A Document is a
// titled sequence of sections and elements; renderers walk the tree and map
// each element and style hint to their own presentation. The package carries
// no knowledge of what the report is about.
package report

// Style is a semantic presentation hint attached to text. Renderers decide
// what each hint looks like (color, markup, nothing at all).
type Style int

const (
	StyleNormal Style = iota
	StyleBold
	StyleItalic
	StyleCode
	StyleSuccess
	StyleWarning
	StyleError
	StyleInfo
	StyleDim
)

// Meta is one entry of document-level metadata. Order of entries is
// preserved as added.
type Meta struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Document is the root of a report tree. Build it once, then treat it as
// immutable; renderers only read.
type Document struct {
	Title    string    `json:"title"`
	Meta     []Meta    `json:"meta,omitempty"`
	Elements []Element `json:"elements"`
}

// NewDocument creates an empty document with the given title.
func NewDocument(title string) *Document {
	return &Document{Title: title}
}

// AddMeta appends a metadata entry, preserving insertion order.
func (d *Document) AddMeta(key, value string) {
	d.Meta = append(d.Meta, Meta{Key: key, Value: value})
}

// Add appends elements to the document in order.
func (d *Document) Add(elems ...Element) {
	d.Elements = append(d.Elements, elems...)
}

// Element is one node of the report tree. The variant set is closed:
// Paragraph, Table, List, KeyValueList, and *Section (for nesting).
// Renderers are expected to handle every variant.
type Element interface {
	isElement()
}

// Section groups elements under a title at a given nesting level. Level is
// a depth hint for renderers (1 = top-level heading).
type Section struct {
	Title    string    `json:"title"`
	Level    int       `json:"level"`
	Elements []Element `json:"elements"`
}

// NewSection creates an empty section.
func NewSection(title string, level int) *Section {
	return &Section{Title: title, Level: level}
}

// Add appends elements to the section in order.
func (s *Section) Add(elems ...Element) {
	s.Elements = append(s.Elements, elems...)
}

// Paragraph is a run of text with a single style hint.
type Paragraph struct {
	Text  string `json:"text"`
	Style Style  `json:"style"`
}

// Table is a rectangular grid of string cells. Every row must have exactly
// len(Headers) cells; builders are responsible for honoring that contract.
type Table struct {
	Title   string     `json:"title,omitempty"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// AddRow appends a row. The caller must pass one cell per header.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// List is an ordered sequence of plain string items.
type List struct {
	Title string   `json:"title,omitempty"`
	Items []string `json:"items"`
}

// KeyValue is one row of a KeyValueList. The style applies to the value.
type KeyValue struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Style Style  `json:"style"`
}

// KeyValueList is an ordered sequence of labeled values.
type KeyValueList struct {
	Title string     `json:"title,omitempty"`
	Rows  []KeyValue `json:"rows"`
}

// Add appends a key/value row.
func (kv *KeyValueList) Add(key, value string, style Style) {
	kv.Rows = append(kv.Rows, KeyValue{Key: key, Value: value, Style: style})
}

func (*Section) isElement()      {}
func (*Paragraph) isElement()    {}
func (*Table) isElement()        {}
func (*List) isElement()         {}
func (*KeyValueList) isElement() {}
