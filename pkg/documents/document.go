package documents

import "strings"

// Document is a rendered document. It is immutable once produced.
type Document struct {
	kind  Kind
	text  string
	lines []string
}

func newDocument(kind Kind, text string) *Document {
	return &Document{
		kind:  kind,
		text:  text,
		lines: strings.Split(strings.TrimSuffix(text, "\n"), "\n"),
	}
}

// Kind returns the kind the document was rendered from
func (d *Document) Kind() Kind {
	return d.kind
}

// Title returns the human readable name of the document kind
func (d *Document) Title() string {
	return d.kind.Title()
}

// Text returns the full document text, newline terminated
func (d *Document) Text() string {
	return d.text
}

// Lines returns a copy of the document lines, without line terminators
func (d *Document) Lines() []string {
	return append([]string(nil), d.lines...)
}

// String implements fmt.Stringer
func (d *Document) String() string {
	return d.text
}
