package editor

import (
	"strings"
	"testing"

	"github.com/jonathanface/MiniDocter-sub000/core/story"
)

func para(id string, runs ...story.TextRun) *story.Paragraph {
	return &story.Paragraph{ID: id, Runs: runs, Alignment: story.AlignLeft}
}

// TestToggleFormatWholeParagraph verifies a toggle with no selection flips
// the bit on every run.
func TestToggleFormatWholeParagraph(t *testing.T) {
	p := para("p1",
		story.TextRun{Text: "one ", Format: story.FormatNone},
		story.TextRun{Text: "two", Format: story.Bold},
	)

	ToggleFormat(p, nil, story.Bold)
	if !p.Runs[0].Format.Has(story.Bold) {
		t.Error("first run should gain bold")
	}
	if p.Runs[1].Format.Has(story.Bold) {
		t.Error("second run should lose bold")
	}

	// A collapsed cursor behaves like no selection.
	ToggleFormat(p, &Selection{Start: 2, End: 2}, story.Bold)
	if p.Runs[0].Format.Has(story.Bold) || !p.Runs[1].Format.Has(story.Bold) {
		t.Error("collapsed selection should toggle the whole paragraph")
	}
}

// TestToggleFormatSelection verifies a range selection splits runs at the
// boundaries and toggles only the selected text.
func TestToggleFormatSelection(t *testing.T) {
	p := para("p1", story.TextRun{Text: "Hello World", Format: story.FormatNone})

	ToggleFormat(p, &Selection{Start: 6, End: 11}, story.Bold)
	if len(p.Runs) != 2 {
		t.Fatalf("got %d runs, want 2: %+v", len(p.Runs), p.Runs)
	}
	if p.Runs[0].Text != "Hello " || p.Runs[0].Format != story.FormatNone {
		t.Errorf("before-run = %+v", p.Runs[0])
	}
	if p.Runs[1].Text != "World" || p.Runs[1].Format != story.Bold {
		t.Errorf("selection-run = %+v", p.Runs[1])
	}
	if p.Text() != "Hello World" {
		t.Errorf("text changed: %q", p.Text())
	}
}

// TestToggleFormatSelectionMiddle verifies an interior selection yields
// before, selection, and after runs.
func TestToggleFormatSelectionMiddle(t *testing.T) {
	p := para("p1", story.TextRun{Text: "abcdef", Format: story.Italic})

	ToggleFormat(p, &Selection{Start: 2, End: 4}, story.Bold)
	if len(p.Runs) != 3 {
		t.Fatalf("got %d runs: %+v", len(p.Runs), p.Runs)
	}
	wants := []struct {
		text   string
		format story.Format
	}{
		{"ab", story.Italic},
		{"cd", story.Italic | story.Bold},
		{"ef", story.Italic},
	}
	for i, w := range wants {
		if p.Runs[i].Text != w.text || p.Runs[i].Format != w.format {
			t.Errorf("run %d = %+v, want {%q %v}", i, p.Runs[i], w.text, w.format)
		}
	}
}

// TestToggleFormatMixedSelection verifies the XOR-against-first-run rule for
// selections spanning mixed formats.
func TestToggleFormatMixedSelection(t *testing.T) {
	p := para("p1",
		story.TextRun{Text: "bold", Format: story.Bold},
		story.TextRun{Text: "plain", Format: story.FormatNone},
	)

	// Selection covers both runs; first overlapped run is bold, so toggling
	// bold clears it for the merged selection run.
	ToggleFormat(p, &Selection{Start: 0, End: 9}, story.Bold)
	if len(p.Runs) != 1 {
		t.Fatalf("got %d runs: %+v", len(p.Runs), p.Runs)
	}
	if p.Runs[0].Format.Has(story.Bold) {
		t.Errorf("mixed selection XORs against first run: %+v", p.Runs[0])
	}
	if p.Runs[0].Text != "boldplain" {
		t.Errorf("selection text = %q", p.Runs[0].Text)
	}
}

// TestFormatAt verifies toolbar format reporting across selection shapes.
func TestFormatAt(t *testing.T) {
	single := para("p", story.TextRun{Text: "abc", Format: story.Bold})
	uniform := para("p",
		story.TextRun{Text: "ab", Format: story.Bold},
		story.TextRun{Text: "cd", Format: story.Bold},
	)
	mixed := para("p",
		story.TextRun{Text: "ab", Format: story.Bold},
		story.TextRun{Text: "cd", Format: story.Italic},
	)

	tests := []struct {
		name string
		p    *story.Paragraph
		sel  *Selection
		want story.Format
	}{
		{"single run no selection", single, nil, story.Bold},
		{"uniform no selection", uniform, nil, story.Bold},
		{"mixed no selection", mixed, nil, story.FormatNone},
		{"range within one run", mixed, &Selection{Start: 0, End: 2}, story.Bold},
		{"range across mixed runs", mixed, &Selection{Start: 1, End: 3}, story.FormatNone},
		{"cursor inside second run", mixed, &Selection{Start: 3, End: 3}, story.Italic},
		{"cursor on boundary prefers following", mixed, &Selection{Start: 2, End: 2}, story.Italic},
		{"cursor at very end", mixed, &Selection{Start: 4, End: 4}, story.Italic},
		{"cursor at start", mixed, &Selection{Start: 0, End: 0}, story.Bold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAt(tt.p, tt.sel); got != tt.want {
				t.Errorf("FormatAt = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestSplitKeepsFirstID verifies the first half keeps the id and the second
// half is a new auto-indented paragraph.
func TestSplitKeepsFirstID(t *testing.T) {
	p := para("p1", story.TextRun{Text: "Hello World", Format: story.Bold})

	first, second := Split(p, 5)
	if first.ID != "p1" {
		t.Errorf("first id = %q, want \"p1\"", first.ID)
	}
	if second.ID == "" || second.ID == "p1" {
		t.Errorf("second id should be fresh, got %q", second.ID)
	}
	if first.Text() != "Hello" {
		t.Errorf("first text = %q", first.Text())
	}
	if second.Text() != "\t World" {
		t.Errorf("second text = %q, want tab-indented remainder", second.Text())
	}
	if second.Runs[0].Format != story.Bold {
		t.Error("second paragraph should inherit the first run's format")
	}
	if second.Alignment != story.AlignLeft {
		t.Error("new paragraph alignment should reset to default")
	}
}

// TestMergeKeepsEarlierID verifies merge keeps the earlier paragraph's id
// and reports the join offset.
func TestMergeKeepsEarlierID(t *testing.T) {
	doc := &story.Document{Paragraphs: []*story.Paragraph{
		para("p1", story.TextRun{Text: "First", Format: story.Italic}),
		para("p2", story.TextRun{Text: "Second", Format: story.FormatNone}),
	}}

	offset := MergeAt(doc, 1)
	if offset != 5 {
		t.Errorf("merge offset = %d, want 5", offset)
	}
	if len(doc.Paragraphs) != 1 {
		t.Fatalf("got %d paragraphs, want 1", len(doc.Paragraphs))
	}
	merged := doc.Paragraphs[0]
	if merged.ID != "p1" {
		t.Errorf("merged id = %q, want \"p1\"", merged.ID)
	}
	for _, id := range doc.IDs() {
		if id == "p2" {
			t.Error("id \"p2\" should no longer appear in the document")
		}
	}
	if merged.Text() != "FirstSecond" {
		t.Errorf("merged text = %q", merged.Text())
	}
	if merged.Runs[len(merged.Runs)-1].Format != story.Italic {
		t.Error("merged text should carry the previous paragraph's first-run format")
	}
}

// TestMergeAtRejectsFirstParagraph verifies the first paragraph has nothing
// to merge into.
func TestMergeAtRejectsFirstParagraph(t *testing.T) {
	doc := &story.Document{Paragraphs: []*story.Paragraph{
		para("p1", story.TextRun{Text: "only"}),
	}}
	if got := MergeAt(doc, 0); got != -1 {
		t.Errorf("MergeAt(0) = %d, want -1", got)
	}
	if got := MergeAt(doc, 5); got != -1 {
		t.Errorf("MergeAt out of range = %d, want -1", got)
	}
}

// TestSplitAtInsertsInOrder verifies the document-level split inserts the
// new paragraph directly after the split one.
func TestSplitAtInsertsInOrder(t *testing.T) {
	doc := &story.Document{Paragraphs: []*story.Paragraph{
		para("p1", story.TextRun{Text: "one two"}),
		para("p2", story.TextRun{Text: "tail"}),
	}}

	second := SplitAt(doc, 0, 3)
	if second == nil {
		t.Fatal("SplitAt returned nil")
	}
	ids := doc.IDs()
	if len(ids) != 3 || ids[0] != "p1" || ids[1] != second.ID || ids[2] != "p2" {
		t.Errorf("order after split = %v", ids)
	}
	if got := strings.TrimPrefix(second.Text(), "\t"); got != " two" {
		t.Errorf("second text = %q", second.Text())
	}
}

// TestSplitOffsetClamping verifies out-of-range offsets clamp instead of
// panicking.
func TestSplitOffsetClamping(t *testing.T) {
	p := para("p1", story.TextRun{Text: "abc"})
	first, second := Split(p, 99)
	if first.Text() != "abc" || second.Text() != "\t" {
		t.Errorf("clamped split = %q / %q", first.Text(), second.Text())
	}

	p2 := para("p2", story.TextRun{Text: "abc"})
	first, second = Split(p2, -1)
	if first.Text() != "" || second.Text() != "\tabc" {
		t.Errorf("negative offset split = %q / %q", first.Text(), second.Text())
	}
}
