// Package encoding provides shared text escaping and entity utilities for
// the HTML-facing converters.
package encoding

import "strings"

// NBSP is the non-breaking space character used to smuggle tab stops through
// HTML widgets that strip literal tabs.
const NBSP = '\u00a0'

// NBSPEntity is the entity form of NBSP.
const NBSPEntity = "&nbsp;"

// EscapeHTML escapes special characters for HTML text content.
// Escapes: & < > "
func EscapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}

// EscapeHTMLAttr escapes text for use in a double-quoted HTML attribute.
func EscapeHTMLAttr(s string) string {
	return EscapeHTML(s)
}

// entityForms is the entity set the supported widgets emit.
var entityForms = []struct {
	form string
	text string
}{
	{"&nbsp;", string(NBSP)},
	{"&#160;", string(NBSP)},
	{"&quot;", "\""},
	{"&apos;", "'"},
	{"&#39;", "'"},
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
}

// DecodeEntityAt decodes a single entity at the start of s, returning the
// decoded text and the number of input bytes consumed. An unknown entity (or
// a bare ampersand) passes through as one literal byte, so forward scanners
// never stall.
func DecodeEntityAt(s string) (string, int) {
	for _, e := range entityForms {
		if strings.HasPrefix(s, e.form) {
			return e.text, len(e.form)
		}
	}
	return "&", 1
}

// DecodeEntities decodes the entity forms used by the supported widgets back
// into literal characters. Unknown entities pass through untouched.
func DecodeEntities(s string) string {
	if !strings.ContainsRune(s, '&') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '&' {
			b.WriteByte(s[i])
			i++
			continue
		}
		text, n := DecodeEntityAt(s[i:])
		b.WriteString(text)
		i += n
	}
	return b.String()
}
