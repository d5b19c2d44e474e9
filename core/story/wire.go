package story

import (
	"encoding/json"

	"github.com/jonathanface/MiniDocter-sub000/internal/logging"
)

// wire.go - JSON mapping of the backend's per-paragraph payload.
// The backend stores a bag of paragraphs keyed by its own identifier; each
// entry carries a serialized paragraph structurally equivalent to Paragraph.

// wireParagraph is the transport shape of one paragraph payload.
type wireParagraph struct {
	ID        string    `json:"id"`
	Runs      []TextRun `json:"runs"`
	Alignment string    `json:"alignment,omitempty"`
	Kind      string    `json:"kind,omitempty"`
}

// DecodeParagraph parses one stored paragraph payload. A payload that fails
// to parse is recovered locally as a paragraph with no runs and a fresh id;
// the rest of the document keeps loading. The boolean result reports whether
// the payload parsed cleanly.
func DecodeParagraph(data []byte) (*Paragraph, bool) {
	var w wireParagraph
	if err := json.Unmarshal(data, &w); err != nil {
		return NewParagraph(), false
	}
	p := &Paragraph{
		ID:        w.ID,
		Runs:      w.Runs,
		Alignment: Alignment(w.Alignment).Normalize(),
		Kind:      Kind(w.Kind),
	}
	if p.ID == "" {
		p.ID = NewParagraphID()
	}
	return p, true
}

// DecodeDocument parses an ordered list of stored paragraph payloads into a
// Document. Unparseable entries degrade to empty paragraphs with fresh ids;
// visible text in the remaining entries is never lost.
func DecodeDocument(payloads [][]byte) *Document {
	doc := &Document{Paragraphs: make([]*Paragraph, 0, len(payloads))}
	for i, data := range payloads {
		p, ok := DecodeParagraph(data)
		if !ok {
			logging.RecoveredParagraph(i)
		}
		doc.Paragraphs = append(doc.Paragraphs, p)
	}
	return doc
}

// EncodeParagraph serializes one paragraph for the backend.
func EncodeParagraph(p *Paragraph) ([]byte, error) {
	w := wireParagraph{
		ID:        p.ID,
		Runs:      p.Runs,
		Alignment: string(p.Alignment.Normalize()),
		Kind:      string(p.Kind),
	}
	return json.Marshal(w)
}
