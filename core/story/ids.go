package story

import "github.com/google/uuid"

// NewParagraphID mints a fresh stable paragraph identifier.
func NewParagraphID() string {
	return uuid.New().String()
}

// NewParagraph creates an empty left-aligned paragraph with a fresh id.
func NewParagraph() *Paragraph {
	return &Paragraph{
		ID:        NewParagraphID(),
		Alignment: AlignLeft,
	}
}
