package richtext

import (
	"regexp"
	"strings"

	"github.com/jonathanface/MiniDocter-sub000/core/encoding"
	"github.com/jonathanface/MiniDocter-sub000/core/story"
)

// paragraphBlock matches one <p> block, capturing the open tag's attributes
// and the inner markup.
var paragraphBlock = regexp.MustCompile(`(?s)<p([^>]*)>(.*?)</p>`)

// alignAttr extracts the alignment data attribute from a <p> open tag.
var alignAttr = regexp.MustCompile(`data-align="(left|center|right|justify)"`)

// formatTags maps tag names to format flags for the decode state machine.
var formatTags = map[string]story.Format{
	"strong": story.Bold,
	"b":      story.Bold,
	"em":     story.Italic,
	"i":      story.Italic,
	"u":      story.Underline,
	"s":      story.Strikethrough,
	"strike": story.Strikethrough,
	"del":    story.Strikethrough,
}

// formatTag identifies a formatting tag. Returns the flag, whether the tag
// is closing, and whether the tag is a formatting tag at all.
func formatTag(tag string) (story.Format, bool, bool) {
	inner := strings.TrimSuffix(strings.TrimPrefix(tag, "<"), ">")
	closing := strings.HasPrefix(inner, "/")
	inner = strings.TrimPrefix(inner, "/")
	if i := strings.IndexAny(inner, " \t\n/"); i != -1 {
		inner = inner[:i]
	}
	flag, ok := formatTags[strings.ToLower(inner)]
	return flag, closing, ok
}

// DecodeRuns parses the inner markup of one paragraph into text runs via a
// single forward scan. The running format mask changes at each formatting
// tag; accumulated text is flushed at the transition, before the tag takes
// effect. Non-formatting tags contribute no text and no format change.
// Malformed markup degrades to best-effort text extraction; visible
// characters are never dropped.
func DecodeRuns(inner string) []story.TextRun {
	var runs []story.TextRun
	var buf strings.Builder
	format := story.FormatNone

	flush := func() {
		if buf.Len() > 0 {
			runs = append(runs, story.TextRun{Text: buf.String(), Format: format})
			buf.Reset()
		}
	}

	i := 0
	for i < len(inner) {
		switch inner[i] {
		case '<':
			end := strings.IndexByte(inner[i:], '>')
			if end == -1 {
				// Unterminated tag: keep the remainder as literal text.
				buf.WriteString(inner[i:])
				i = len(inner)
				continue
			}
			tag := inner[i : i+end+1]
			if flag, closing, ok := formatTag(tag); ok {
				flush()
				if closing {
					format = format.Without(flag)
				} else {
					format = format.With(flag)
				}
			}
			i += end + 1
		case '&':
			decoded, n := encoding.DecodeEntityAt(inner[i:])
			buf.WriteString(decoded)
			i += n
		default:
			buf.WriteByte(inner[i])
			i++
		}
	}
	flush()

	return finishRuns(runs)
}

// editTrimCutset is the ordinary whitespace trimmed from the edges of a
// paragraph. NBSP is deliberately absent: non-breaking spaces carry encoded
// tab stops and must survive trimming.
const editTrimCutset = " \t\r\n"

// finishRuns applies the paragraph-edge trim, decodes tab stops, and drops
// runs left empty. Only the first run's leading and the last run's trailing
// whitespace are trimmed; interior runs keep intentional spacing created at
// formatting boundaries.
func finishRuns(runs []story.TextRun) []story.TextRun {
	if len(runs) > 0 {
		runs[0].Text = strings.TrimLeft(runs[0].Text, editTrimCutset)
		runs[len(runs)-1].Text = strings.TrimRight(runs[len(runs)-1].Text, editTrimCutset)
	}
	out := runs[:0]
	for _, r := range runs {
		r.Text = decodeTabs(r.Text)
		if r.Text != "" {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// decodeTabs converts runs of non-breaking spaces back into tab stops: each
// group of four becomes one tab, and any leftover non-breaking space becomes
// an ordinary space. Applying encode then decode repeatedly is stable after
// the first round-trip.
func decodeTabs(s string) string {
	if !strings.ContainsRune(s, encoding.NBSP) {
		return s
	}
	var b strings.Builder
	count := 0
	flushNBSP := func() {
		b.WriteString(strings.Repeat("\t", count/4))
		b.WriteString(strings.Repeat(" ", count%4))
		count = 0
	}
	for _, r := range s {
		if r == encoding.NBSP {
			count++
			continue
		}
		flushNBSP()
		b.WriteRune(r)
	}
	flushNBSP()
	return b.String()
}

// DecodeParagraph parses one <p> block's attributes and inner markup.
func DecodeParagraph(attrs, inner, id string) *story.Paragraph {
	alignment := story.AlignLeft
	if m := alignAttr.FindStringSubmatch(attrs); m != nil {
		alignment = story.Alignment(m[1]).Normalize()
	}
	if id == "" {
		id = story.NewParagraphID()
	}
	return &story.Paragraph{
		ID:        id,
		Runs:      DecodeRuns(inner),
		Alignment: alignment,
	}
}

// DecodeDocument parses a widget-serialized HTML string back into a
// document. priorIDs carries the stable ids of the previously loaded
// paragraph list, matched positionally: paragraph i keeps priorIDs[i] when
// present, and any paragraph past the end of the prior list is treated as
// newly created and minted a fresh id. Correspondence after reordering is
// not guessed at; a reordered paragraph simply gets a new id.
//
// Input with no <p> blocks is treated as the inner markup of a single
// paragraph, so plain text degrades gracefully instead of vanishing.
func DecodeDocument(html string, priorIDs []string) *story.Document {
	idAt := func(i int) string {
		if i < len(priorIDs) {
			return priorIDs[i]
		}
		return ""
	}

	blocks := paragraphBlock.FindAllStringSubmatch(html, -1)
	if blocks == nil {
		doc := &story.Document{}
		if strings.TrimSpace(html) != "" {
			doc.Paragraphs = append(doc.Paragraphs, DecodeParagraph("", html, idAt(0)))
		}
		return doc
	}

	doc := &story.Document{Paragraphs: make([]*story.Paragraph, 0, len(blocks))}
	for i, m := range blocks {
		doc.Paragraphs = append(doc.Paragraphs, DecodeParagraph(m[1], m[2], idAt(i)))
	}
	return doc
}
