// Package richtext converts between the story document model and the flat
// HTML serialization consumed by the rich-text editor widget. Conversion is
// lossless for text content, formatting flags, tab stops, paragraph order,
// and stable paragraph ids; alignment is carried as data even though the
// widget itself does not render it (known limitation of the leaf format).
package richtext

import (
	"strings"

	"github.com/jonathanface/MiniDocter-sub000/core/encoding"
	"github.com/jonathanface/MiniDocter-sub000/core/story"
)

// tabEntities is the fixed encoding of one tab stop. The editor widget
// strips literal tabs, so each tab travels as four non-breaking spaces.
var tabEntities = strings.Repeat(encoding.NBSPEntity, 4)

// EncodeRun serializes one text run. Formatting tags nest in a fixed order,
// strong outside em outside u outside s, matching the decode direction so
// round-trips are stable.
func EncodeRun(r story.TextRun) string {
	text := encoding.EscapeHTML(r.Text)
	text = strings.ReplaceAll(text, "\t", tabEntities)
	if r.Format.Has(story.Strikethrough) {
		text = "<s>" + text + "</s>"
	}
	if r.Format.Has(story.Underline) {
		text = "<u>" + text + "</u>"
	}
	if r.Format.Has(story.Italic) {
		text = "<em>" + text + "</em>"
	}
	if r.Format.Has(story.Bold) {
		text = "<strong>" + text + "</strong>"
	}
	return text
}

// EncodeParagraph serializes one paragraph as a <p> block. Non-default
// alignment is recorded in a data attribute so it survives the round-trip
// even though the widget ignores it.
func EncodeParagraph(p *story.Paragraph) string {
	var b strings.Builder
	b.WriteString("<p")
	if a := p.Alignment.Normalize(); a != story.AlignLeft {
		b.WriteString(` data-align="` + string(a) + `"`)
	}
	b.WriteString(">")
	for _, r := range p.Runs {
		b.WriteString(EncodeRun(r))
	}
	b.WriteString("</p>")
	return b.String()
}

// EncodeDocument serializes a document: one <p> block per paragraph, no
// separators (each block is its own element).
func EncodeDocument(d *story.Document) string {
	var b strings.Builder
	for _, p := range d.Paragraphs {
		b.WriteString(EncodeParagraph(p))
	}
	return b.String()
}
