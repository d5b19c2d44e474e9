package assoc

import (
	"regexp"
	"strings"

	"github.com/jonathanface/MiniDocter-sub000/core/encoding"
)

// DecorationClass is the class attribute marking a decoration span.
const DecorationClass = "assoc-highlight"

// Palette maps association types to display colors. Palette selection is a
// caller concern; the decorator never assumes a color scheme.
type Palette struct {
	Colors   map[Type]string
	Fallback string
}

// DarkPalette is the palette for dark backgrounds.
var DarkPalette = Palette{
	Colors: map[Type]string{
		TypeCharacter: "#4ade80",
		TypePlace:     "#60a5fa",
		TypeEvent:     "#f87171",
		TypeItem:      "#fbbf24",
	},
	Fallback: "#ffffff",
}

// LightPalette is the higher-contrast palette for light backgrounds.
var LightPalette = Palette{
	Colors: map[Type]string{
		TypeCharacter: "#15803d",
		TypePlace:     "#1d4ed8",
		TypeEvent:     "#b91c1c",
		TypeItem:      "#b45309",
	},
	Fallback: "#111827",
}

// Color returns the palette color for a type, or the fallback for unknown
// types.
func (p Palette) Color(t Type) string {
	if c, ok := p.Colors[t]; ok {
		return c
	}
	return p.Fallback
}

// decorationPair matches a full decoration span, capturing its content.
// Matched text may contain line breaks (a multi-word alias can span one), so
// the pattern runs in single-line mode.
var decorationPair = regexp.MustCompile(`(?s)<span class="` + DecorationClass + `"[^>]*>(.*?)</span>`)

// stripPassLimit bounds StripDecorations against malformed input.
const stripPassLimit = 8

// StripDecorations removes previously applied decoration spans, keeping
// their text content. Repeated until stable so nested leftovers from earlier
// passes unwrap too; bounded to a fixed number of passes so malformed markup
// cannot loop.
func StripDecorations(html string) string {
	for i := 0; i < stripPassLimit; i++ {
		next := decorationPair.ReplaceAllString(html, "$1")
		if next == html {
			break
		}
		html = next
	}
	return html
}

// DecorateHTML finds association matches in the text content of an HTML
// string and wraps each in a decoration span carrying the association id,
// type, and the palette color for that type. Tag markup is treated as opaque:
// matching never happens inside <...> and a match never crosses a tag.
// Callers re-decorating previously decorated markup should StripDecorations
// first; this function does not do so implicitly.
func DecorateHTML(html string, assocs []*Association, palette Palette) string {
	if html == "" || len(assocs) == 0 {
		return html
	}
	var b strings.Builder
	rest := html
	for rest != "" {
		open := strings.IndexByte(rest, '<')
		if open == -1 {
			b.WriteString(decorateText(rest, assocs, palette))
			break
		}
		b.WriteString(decorateText(rest[:open], assocs, palette))
		end := strings.IndexByte(rest[open:], '>')
		if end == -1 {
			// Unterminated tag: emit the remainder untouched, best effort.
			b.WriteString(rest[open:])
			break
		}
		b.WriteString(rest[open : open+end+1])
		rest = rest[open+end+1:]
	}
	return b.String()
}

// decorateText decorates one tag-free stretch of text.
func decorateText(text string, assocs []*Association, palette Palette) string {
	if text == "" {
		return text
	}
	var b strings.Builder
	for _, seg := range Segments(text, assocs) {
		if seg.Association == nil {
			b.WriteString(seg.Text)
			continue
		}
		a := seg.Association
		b.WriteString(`<span class="` + DecorationClass + `"`)
		b.WriteString(` data-assoc-id="` + encoding.EscapeHTMLAttr(a.ID) + `"`)
		b.WriteString(` data-assoc-type="` + encoding.EscapeHTMLAttr(string(a.Type)) + `"`)
		b.WriteString(` style="color: ` + palette.Color(a.Type) + `">`)
		b.WriteString(seg.Text)
		b.WriteString(`</span>`)
	}
	return b.String()
}
