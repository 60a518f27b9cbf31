package scanner

import (
	"bufio"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/harrison/seekr/internal/models"
	"github.com/harrison/seekr/internal/pattern"
)

// scanSmall reads the file sequentially line by line. Line endings are
// stripped (both \n and \r\n) and no final newline is assumed. Line
// numbering starts at 1.
func scanSmall(f *os.File, path string, m *pattern.Matcher, caseSensitive bool) ([]models.SearchResult, error) {
	sc := bufio.NewScanner(f)
	// Lines can be as long as the whole file on this path.
	sc.Buffer(make([]byte, 64*1024), LargeFileThreshold)

	var results []models.SearchResult
	lineNumber := 0

	for sc.Scan() {
		lineNumber++
		line := sc.Text()

		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("%w: %s line %d", models.ErrInvalidEncoding, path, lineNumber)
		}

		matches := matchLine(m, line, caseSensitive)
		if len(matches) == 0 {
			continue
		}

		results = append(results, models.SearchResult{
			Path:       path,
			LineNumber: lineNumber,
			Line:       line,
			Matches:    matches,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return results, nil
}
