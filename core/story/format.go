package story

import "strings"

// Format is a bitmask of character formatting flags applied to a run of text.
// The bit values are part of the wire contract with the backend and must not
// be reordered.
type Format int

// Formatting flags.
const (
	Bold Format = 1 << iota
	Italic
	Strikethrough
	Underline
)

// FormatNone is the zero mask (plain text).
const FormatNone Format = 0

// Has reports whether every bit in flag is set.
func (f Format) Has(flag Format) bool {
	return f&flag == flag
}

// With returns f with the given bits set.
func (f Format) With(flag Format) Format {
	return f | flag
}

// Without returns f with the given bits cleared.
func (f Format) Without(flag Format) Format {
	return f &^ flag
}

// Toggle returns f with the given bits flipped.
func (f Format) Toggle(flag Format) Format {
	return f ^ flag
}

// String returns a human-readable flag list, e.g. "bold|italic".
func (f Format) String() string {
	if f == FormatNone {
		return "none"
	}
	var parts []string
	if f.Has(Bold) {
		parts = append(parts, "bold")
	}
	if f.Has(Italic) {
		parts = append(parts, "italic")
	}
	if f.Has(Strikethrough) {
		parts = append(parts, "strikethrough")
	}
	if f.Has(Underline) {
		parts = append(parts, "underline")
	}
	return strings.Join(parts, "|")
}
