// Package editor implements the selection-aware editing operations behind
// the manual per-paragraph text-input editor, where formatting is tracked
// outside the text content. All offsets are rune offsets into a paragraph's
// flat text (the concatenation of its runs).
package editor

import (
	"strings"

	"github.com/jonathanface/MiniDocter-sub000/core/story"
)

// Selection is a half-open rune range [Start, End) within one paragraph's
// flat text. Start == End is a collapsed cursor.
type Selection struct {
	Start int
	End   int
}

// IsRange reports whether the selection covers at least one rune.
func (s Selection) IsRange() bool {
	return s.Start < s.End
}

// clamp bounds the selection to a paragraph of the given rune length.
func (s Selection) clamp(length int) Selection {
	if s.Start < 0 {
		s.Start = 0
	}
	if s.End > length {
		s.End = length
	}
	if s.End < s.Start {
		s.End = s.Start
	}
	return s
}

// runSpan is a run together with its rune range in the flat text.
type runSpan struct {
	run   story.TextRun
	start int
	end   int
}

// spans computes the rune range of every run.
func spans(p *story.Paragraph) []runSpan {
	out := make([]runSpan, 0, len(p.Runs))
	pos := 0
	for _, r := range p.Runs {
		n := len([]rune(r.Text))
		out = append(out, runSpan{run: r, start: pos, end: pos + n})
		pos += n
	}
	return out
}

// firstFormat returns the format of the paragraph's first run, or none for
// an empty paragraph.
func firstFormat(p *story.Paragraph) story.Format {
	if len(p.Runs) == 0 {
		return story.FormatNone
	}
	return p.Runs[0].Format
}

// ToggleFormat flips a format flag on a paragraph.
//
// With a range selection the runs are split at the selection boundaries:
// text outside the selection keeps its per-run format, and the selected text
// becomes a single run whose mask is the requested flag XOR-ed against the
// format of the first run the selection overlaps. When the selection spans
// mixed formats this XOR-against-the-first-run rule is the implemented
// behavior, chosen to match the shipped client rather than the
// word-processor force-enable convention.
//
// With no selection (nil or collapsed) the flag is flipped on every run.
func ToggleFormat(p *story.Paragraph, sel *Selection, flag story.Format) {
	if sel == nil || !sel.IsRange() {
		for i := range p.Runs {
			p.Runs[i].Format = p.Runs[i].Format.Toggle(flag)
		}
		return
	}

	s := sel.clamp(p.Length())
	if !s.IsRange() {
		return
	}

	var before, after []story.TextRun
	var selected strings.Builder
	selFormat := story.FormatNone
	seenSel := false

	for _, rs := range spans(p) {
		runes := []rune(rs.run.Text)
		// Portion before the selection.
		if rs.start < s.Start {
			hi := min(s.Start, rs.end)
			before = append(before, story.TextRun{
				Text:   string(runes[:hi-rs.start]),
				Format: rs.run.Format,
			})
		}
		// Portion inside the selection.
		lo := max(rs.start, s.Start)
		hi := min(rs.end, s.End)
		if lo < hi {
			if !seenSel {
				selFormat = rs.run.Format
				seenSel = true
			}
			selected.WriteString(string(runes[lo-rs.start : hi-rs.start]))
		}
		// Portion after the selection.
		if rs.end > s.End {
			lo := max(s.End, rs.start)
			after = append(after, story.TextRun{
				Text:   string(runes[lo-rs.start:]),
				Format: rs.run.Format,
			})
		}
	}

	runs := before
	runs = append(runs, story.TextRun{
		Text:   selected.String(),
		Format: selFormat.Toggle(flag),
	})
	runs = append(runs, after...)
	p.Runs = runs
}

// FormatAt reports the format the toolbar should highlight for a selection.
//
// A single-run paragraph reports that run's format. With no selection the
// common format of all runs is reported, or none when runs disagree. A range
// selection reports the common format of every overlapped run, or none on
// disagreement. A collapsed cursor reports the format of the run containing
// the offset, preferring the run that follows a boundary except at the very
// end of the paragraph.
func FormatAt(p *story.Paragraph, sel *Selection) story.Format {
	if len(p.Runs) == 0 {
		return story.FormatNone
	}
	if len(p.Runs) == 1 {
		return p.Runs[0].Format
	}

	if sel == nil {
		return commonFormat(p.Runs)
	}

	s := sel.clamp(p.Length())
	if s.IsRange() {
		var overlapped []story.TextRun
		for _, rs := range spans(p) {
			if rs.start < s.End && rs.end > s.Start {
				overlapped = append(overlapped, rs.run)
			}
		}
		if len(overlapped) == 0 {
			return story.FormatNone
		}
		return commonFormat(overlapped)
	}

	// Collapsed cursor: prefer the following run on an exact boundary.
	all := spans(p)
	for i, rs := range all {
		if s.Start >= rs.start && s.Start < rs.end {
			return rs.run.Format
		}
		if s.Start == rs.end && i == len(all)-1 {
			return rs.run.Format
		}
	}
	return story.FormatNone
}

// commonFormat returns the shared format of the runs, or none when mixed.
func commonFormat(runs []story.TextRun) story.Format {
	f := runs[0].Format
	for _, r := range runs[1:] {
		if r.Format != f {
			return story.FormatNone
		}
	}
	return f
}

// Split breaks a paragraph at a cursor offset into two. The first paragraph
// keeps the original id, alignment, and the text before the cursor; the
// second is newly created with a fresh id, default alignment, and the text
// after the cursor prefixed with one tab (new paragraphs auto-indent). Both
// sides inherit the format of the original first run.
func Split(p *story.Paragraph, offset int) (*story.Paragraph, *story.Paragraph) {
	runes := []rune(p.Text())
	if offset < 0 {
		offset = 0
	}
	if offset > len(runes) {
		offset = len(runes)
	}
	format := firstFormat(p)

	first := &story.Paragraph{
		ID:        p.ID,
		Runs:      []story.TextRun{{Text: string(runes[:offset]), Format: format}},
		Alignment: p.Alignment.Normalize(),
		Kind:      p.Kind,
	}
	second := &story.Paragraph{
		ID:        story.NewParagraphID(),
		Runs:      []story.TextRun{{Text: "\t" + string(runes[offset:]), Format: format}},
		Alignment: story.AlignLeft,
	}
	return first, second
}

// Merge appends a paragraph's text onto the end of the previous paragraph.
// The previous paragraph keeps its id; the merged text is appended as one
// run carrying the previous paragraph's first-run format. The returned
// offset is the rune position of the join in the merged paragraph, where the
// caller should place the cursor. The later paragraph's id is discarded.
func Merge(prev, cur *story.Paragraph) int {
	offset := prev.Length()
	text := cur.Text()
	if text != "" {
		prev.Runs = append(prev.Runs, story.TextRun{
			Text:   text,
			Format: firstFormat(prev),
		})
	}
	return offset
}

// SplitAt applies Split to paragraph i of a document, inserting the new
// paragraph after it. Returns the newly created paragraph, or nil when i is
// out of range.
func SplitAt(d *story.Document, i, offset int) *story.Paragraph {
	if i < 0 || i >= len(d.Paragraphs) {
		return nil
	}
	first, second := Split(d.Paragraphs[i], offset)
	d.Paragraphs[i] = first
	d.Paragraphs = append(d.Paragraphs, nil)
	copy(d.Paragraphs[i+2:], d.Paragraphs[i+1:])
	d.Paragraphs[i+1] = second
	return second
}

// MergeAt merges paragraph i of a document into paragraph i-1 and removes
// it, reporting the cursor offset in the surviving paragraph. Returns -1
// when i does not name a mergeable (non-first) paragraph.
func MergeAt(d *story.Document, i int) int {
	if i <= 0 || i >= len(d.Paragraphs) {
		return -1
	}
	offset := Merge(d.Paragraphs[i-1], d.Paragraphs[i])
	d.Paragraphs = append(d.Paragraphs[:i], d.Paragraphs[i+1:]...)
	return offset
}
