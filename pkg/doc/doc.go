// Package doc models styled documents as ordered paragraphs of formatted runs,
// and segments them into marker-delimited regions.
package doc

import "strings"

// Format is the formatting descriptor carried by a run. It is treated as an
// opaque immutable value by the rest of the system: two runs belong together
// exactly when their Format values compare equal.
type Format struct {
	Bold      bool    `json:"bold,omitempty"`
	Italic    bool    `json:"italic,omitempty"`
	Underline bool    `json:"underline,omitempty"`
	Font      string  `json:"font,omitempty"`
	Size      float64 `json:"size,omitempty"`
	Color     string  `json:"color,omitempty"`
}

// Run is a maximal span of paragraph text sharing one formatting descriptor.
type Run struct {
	Text   string `json:"text"`
	Format Format `json:"format"`
}

// Paragraph is an ordered sequence of runs. Its logical text is the
// concatenation of its runs' text in order, with no gaps or overlaps.
type Paragraph struct {
	Runs []Run `json:"runs"`
	// Style is the named paragraph style from the source container
	// ("Heading 1", "Normal", ...). Empty when the loader has no styles.
	Style string `json:"style,omitempty"`
}

// Text returns the paragraph's concatenated run text.
func (p *Paragraph) Text() string {
	if len(p.Runs) == 1 {
		return p.Runs[0].Text
	}
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// IsHeading reports whether the paragraph carries a heading style.
func (p *Paragraph) IsHeading() bool {
	return strings.HasPrefix(strings.ToLower(p.Style), "heading")
}

// Clone returns a deep copy of the paragraph.
func (p *Paragraph) Clone() Paragraph {
	runs := make([]Run, len(p.Runs))
	copy(runs, p.Runs)
	return Paragraph{Runs: runs, Style: p.Style}
}

// Document is an ordered sequence of paragraphs.
type Document struct {
	Paragraphs []Paragraph `json:"paragraphs"`
}

// Text returns the document's paragraphs joined by newlines.
func (d *Document) Text() string {
	parts := make([]string, len(d.Paragraphs))
	for i := range d.Paragraphs {
		parts[i] = d.Paragraphs[i].Text()
	}
	return strings.Join(parts, "\n")
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := &Document{Paragraphs: make([]Paragraph, len(d.Paragraphs))}
	for i := range d.Paragraphs {
		out.Paragraphs[i] = d.Paragraphs[i].Clone()
	}
	return out
}

// AddParagraph appends a paragraph built from a single run.
func (d *Document) AddParagraph(text string, f Format) {
	d.Paragraphs = append(d.Paragraphs, Paragraph{Runs: []Run{{Text: text, Format: f}}})
}
