package story

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Fingerprint returns the BLAKE3 hash of the paragraph's visible text.
// Two paragraphs with identical text (regardless of formatting) share a
// fingerprint; callers use it to skip unchanged paragraphs on save.
func (p *Paragraph) Fingerprint() string {
	h := blake3.Sum256([]byte(p.Text()))
	return hex.EncodeToString(h[:])
}

// Fingerprint returns the BLAKE3 hash over all paragraph texts in order,
// separated by newlines.
func (d *Document) Fingerprint() string {
	h := blake3.Sum256([]byte(d.Text()))
	return hex.EncodeToString(h[:])
}
