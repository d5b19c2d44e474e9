package assoc

import (
	"regexp"
	"sort"
	"strings"
)

// Segment is one span of an ordered, contiguous partition of the input text.
// Association is nil for spans that matched nothing. Concatenating the Text
// fields of all segments reproduces the input exactly.
type Segment struct {
	Text        string
	Association *Association
}

// candidate is one compiled match string: a record's name or one alias.
type candidate struct {
	text  string
	re    *regexp.Regexp
	assoc *Association
}

// buildCandidates compiles the candidate list for a matching pass: one entry
// per (record, name-or-alias), deduplicated by exact text within a record,
// sorted by text length descending so the longest literal wins a tie at the
// same start position. The sort is stable, so between records of equal
// length the caller's record order decides.
func buildCandidates(assocs []*Association) []candidate {
	var cands []candidate
	for _, a := range assocs {
		if a == nil {
			continue
		}
		seen := make(map[string]bool)
		names := append([]string{a.Name}, a.Aliases...)
		for _, name := range names {
			name = strings.TrimSpace(name)
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			cands = append(cands, candidate{
				text:  name,
				re:    compilePattern(name, a.CaseSensitive),
				assoc: a,
			})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		return len(cands[i].text) > len(cands[j].text)
	})
	return cands
}

// compilePattern builds the word-bounded literal pattern for one candidate.
// The literal is quoted so regex metacharacters in a name can never break or
// widen the match.
func compilePattern(literal string, caseSensitive bool) *regexp.Regexp {
	pattern := `\b` + regexp.QuoteMeta(literal) + `\b`
	if !caseSensitive {
		pattern = `(?i)` + pattern
	}
	return regexp.MustCompile(pattern)
}

// Segments partitions text into an ordered list of matched and unmatched
// spans. Matches never overlap and never nest; the earliest match wins, and
// on a start-position tie the longest candidate wins. An empty text yields
// no segments; an empty association list yields the whole text as a single
// unassociated segment.
func Segments(text string, assocs []*Association) []Segment {
	if text == "" {
		return nil
	}
	cands := buildCandidates(assocs)
	if len(cands) == 0 {
		return []Segment{{Text: text}}
	}

	var segs []Segment
	rest := text
	for rest != "" {
		bestIdx := -1
		var bestLoc []int
		for i := range cands {
			loc := cands[i].re.FindStringIndex(rest)
			if loc == nil {
				continue
			}
			// Strict < keeps the earlier (longer) candidate on a tie.
			if bestIdx == -1 || loc[0] < bestLoc[0] {
				bestIdx, bestLoc = i, loc
			}
		}
		if bestIdx == -1 {
			segs = append(segs, Segment{Text: rest})
			break
		}
		if bestLoc[0] > 0 {
			segs = append(segs, Segment{Text: rest[:bestLoc[0]]})
		}
		segs = append(segs, Segment{
			Text:        rest[bestLoc[0]:bestLoc[1]],
			Association: cands[bestIdx].assoc,
		})
		rest = rest[bestLoc[1]:]
	}
	return segs
}
