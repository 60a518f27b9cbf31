// Package models defines the core data types shared across seekr's
// search pipeline: match spans, per-line search results, and the
// sentinel errors of the failure taxonomy.
package models

// Match is a half-open byte span [Start, End) of one pattern match
// within a searched line. Spans are relative to the exact string the
// matcher was run against, which may be a case-folded copy of the
// original line.
type Match struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the match.
func (m Match) Len() int {
	return m.End - m.Start
}

// SearchResult is one matching line of one file. It is created by the
// line scanner and never mutated afterwards.
//
// Line always holds the original text as read from the file, never a
// case-folded copy; Matches hold spans computed against the folded
// copy, which case folding keeps byte-aligned with the original.
type SearchResult struct {
	Path       string
	LineNumber int // 1-based
	Line       string
	Matches    []Match
}

// HasMatch reports whether the result carries at least one match.
func (r *SearchResult) HasMatch() bool {
	return len(r.Matches) > 0
}
