// Package pattern compiles user search terms into matchers.
//
// A term is either a literal substring or a regular expression. Literal
// terms are metacharacter-escaped before compilation so they match only
// themselves. The compiled matcher never folds case: case-insensitive
// search is implemented by callers folding the searched text, not the
// pattern, so a regex with explicit case-sensitive constructs is
// affected by the case flag only through the folded input.
package pattern

import (
	"fmt"
	"regexp"

	"github.com/harrison/seekr/internal/models"
)

// Matcher is an immutable compiled search pattern. It is safe for
// concurrent use by multiple goroutines.
type Matcher struct {
	re *regexp.Regexp
}

// Compile builds a Matcher from a search term. When isRegex is false
// the term is escaped so every regex metacharacter matches itself
// verbatim. A term that does not compile yields an error wrapping
// models.ErrInvalidPattern.
func Compile(term string, isRegex bool) (*Matcher, error) {
	expr := term
	if !isRegex {
		expr = regexp.QuoteMeta(term)
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidPattern, err)
	}

	return &Matcher{re: re}, nil
}

// FindAll returns every non-overlapping match of the pattern in s, in
// left-to-right order. Offsets are byte offsets into s. Returns nil
// when there is no match.
func (m *Matcher) FindAll(s string) []models.Match {
	idx := m.re.FindAllStringIndex(s, -1)
	if len(idx) == 0 {
		return nil
	}

	matches := make([]models.Match, len(idx))
	for i, span := range idx {
		matches[i] = models.Match{Start: span[0], End: span[1]}
	}
	return matches
}

// String returns the compiled expression, for diagnostics.
func (m *Matcher) String() string {
	return m.re.String()
}
