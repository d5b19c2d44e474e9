// Package assoc locates occurrences of named story entities (characters,
// places, events, items) in prose and decorates them for display. Matching
// is literal, whole-word, longest-match-wins, with per-record case
// sensitivity covering the record's name and all of its aliases.
package assoc

import "strings"

// Type classifies an association. Unknown types are legal and fall back to
// the palette's neutral color.
type Type string

// Association types.
const (
	TypeCharacter Type = "character"
	TypePlace     Type = "place"
	TypeEvent     Type = "event"
	TypeItem      Type = "item"
)

// Association is one named story entity supplied by the caller.
// Name and alias strings are treated as literal text, never as patterns.
type Association struct {
	ID            string
	Name          string
	Aliases       []string
	Type          Type
	CaseSensitive bool
}

// Wire is the transport shape of an association record as the backend
// exposes it. Aliases travel comma-joined in a single string.
type Wire struct {
	AssociationID   string `json:"association_id"`
	AssociationName string `json:"association_name"`
	Aliases         string `json:"aliases"`
	AssociationType string `json:"association_type"`
	CaseSensitive   bool   `json:"case_sensitive"`
}

// FromWire maps a transport record into an Association. Aliases are split on
// commas, trimmed, and empties dropped.
func FromWire(w Wire) *Association {
	a := &Association{
		ID:            w.AssociationID,
		Name:          w.AssociationName,
		Type:          Type(w.AssociationType),
		CaseSensitive: w.CaseSensitive,
	}
	for _, alias := range strings.Split(w.Aliases, ",") {
		alias = strings.TrimSpace(alias)
		if alias != "" {
			a.Aliases = append(a.Aliases, alias)
		}
	}
	return a
}

// FromWireList maps a list of transport records.
func FromWireList(ws []Wire) []*Association {
	out := make([]*Association, 0, len(ws))
	for _, w := range ws {
		out = append(out, FromWire(w))
	}
	return out
}
