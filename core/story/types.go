// Package story defines the in-memory document model for chapter prose:
// an ordered list of paragraphs, each holding formatted text runs, a
// paragraph-level alignment, and a stable identifier the backend uses to
// track a paragraph across edits.
package story

import "strings"

// Alignment is the paragraph-level text alignment.
type Alignment string

// Alignment constants.
const (
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
	AlignJustify Alignment = "justify"
)

// validAlignments is the set of recognized alignments.
var validAlignments = map[Alignment]bool{
	AlignLeft:    true,
	AlignCenter:  true,
	AlignRight:   true,
	AlignJustify: true,
}

// Normalize maps absent or unrecognized alignments to AlignLeft.
func (a Alignment) Normalize() Alignment {
	if validAlignments[a] {
		return a
	}
	return AlignLeft
}

// Kind is the paragraph block kind.
type Kind string

// Kind constants.
const (
	KindParagraph Kind = "paragraph"
	KindHeading   Kind = "heading"
	KindQuote     Kind = "quote"
)

// TextRun is a contiguous span of text sharing one format mask.
type TextRun struct {
	Text   string `json:"text"`
	Format Format `json:"format"`
}

// Paragraph is a single block of prose.
//
// ID is stable for the lifetime of the paragraph: it survives any edit that
// does not split or merge the paragraph, and is freshly minted only when a
// paragraph is newly created. On a merge the earlier paragraph's ID survives
// and the later one is discarded.
type Paragraph struct {
	ID        string    `json:"id"`
	Runs      []TextRun `json:"runs"`
	Alignment Alignment `json:"alignment"`
	Kind      Kind      `json:"kind,omitempty"`
}

// Text returns the paragraph's visible text: all runs concatenated in order,
// with no markup.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Length returns the paragraph's visible text length in runes.
func (p *Paragraph) Length() int {
	n := 0
	for _, r := range p.Runs {
		n += len([]rune(r.Text))
	}
	return n
}

// Document is an ordered list of paragraphs. Order is the reading order and
// the only ordering signal.
type Document struct {
	Paragraphs []*Paragraph `json:"paragraphs"`
}

// IDs returns the paragraph ids in document order.
func (d *Document) IDs() []string {
	ids := make([]string, len(d.Paragraphs))
	for i, p := range d.Paragraphs {
		ids[i] = p.ID
	}
	return ids
}

// Text returns the document's visible text, paragraphs joined by newlines.
func (d *Document) Text() string {
	parts := make([]string, len(d.Paragraphs))
	for i, p := range d.Paragraphs {
		parts[i] = p.Text()
	}
	return strings.Join(parts, "\n")
}
