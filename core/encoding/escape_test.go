package encoding

import "testing"

// TestEscapeHTML verifies the escaped character set.
func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no special chars", "Hello World", "Hello World"},
		{"ampersand", "a & b", "a &amp; b"},
		{"angle brackets", "<p>", "&lt;p&gt;"},
		{"quotes", `say "hi"`, "say &quot;hi&quot;"},
		{"already escaped", "&amp;", "&amp;amp;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeHTML(tt.input); got != tt.want {
				t.Errorf("EscapeHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestDecodeEntities verifies the supported entity set decodes and unknown
// entities pass through.
func TestDecodeEntities(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"basic set", "&lt;a&gt; &amp; &quot;b&quot;", `<a> & "b"`},
		{"nbsp forms", "x&nbsp;y&#160;z", "x\u00a0y\u00a0z"},
		{"apostrophes", "&#39;&apos;", "''"},
		{"unknown entity", "&bogus;", "&bogus;"},
		{"no entities", "plain", "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeEntities(tt.input); got != tt.want {
				t.Errorf("DecodeEntities(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestDecodeEntityAt verifies single-entity decoding reports consumed bytes
// and passes a bare ampersand through as one byte.
func TestDecodeEntityAt(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantText string
		wantLen  int
	}{
		{"nbsp", "&nbsp;rest", "\u00a0", 6},
		{"numeric nbsp", "&#160;", "\u00a0", 6},
		{"ampersand", "&amp;amp;", "&", 5},
		{"unknown entity", "&bogus;", "&", 1},
		{"bare ampersand", "& loose", "&", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, n := DecodeEntityAt(tt.input)
			if text != tt.wantText || n != tt.wantLen {
				t.Errorf("DecodeEntityAt(%q) = (%q, %d), want (%q, %d)",
					tt.input, text, n, tt.wantText, tt.wantLen)
			}
		})
	}
}

// TestEscapeDecodeRoundTrip verifies decode inverts escape for text content.
func TestEscapeDecodeRoundTrip(t *testing.T) {
	original := `tabs & <spans> with "quotes"`
	if got := DecodeEntities(EscapeHTML(original)); got != original {
		t.Errorf("round-trip = %q, want %q", got, original)
	}
}
