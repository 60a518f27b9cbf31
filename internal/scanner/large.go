package scanner

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/harrison/seekr/internal/models"
	"github.com/harrison/seekr/internal/pattern"
)

// scanLarge maps the file into memory, decodes it lossily (invalid
// UTF-8 sequences become U+FFFD rather than failing the file), and
// matches its lines in parallel. The mapping is released before the
// function returns so peak memory stays bounded when many large files
// are scanned concurrently.
//
// Line matching fans out across contiguous chunks of the line slice,
// one goroutine per chunk, each writing into its own index range of a
// pre-sized slice. Reassembly is therefore in ascending line order by
// construction, identical to what a sequential scan would produce.
func scanLarge(f *os.File, path string, size int64, m *pattern.Matcher, caseSensitive bool, workers int) ([]models.SearchResult, error) {
	view, err := mapFile(f, size)
	if err != nil {
		return nil, fmt.Errorf("mapping %s: %w", path, err)
	}
	defer view.release()

	lines := splitLines(decodeLossy(view.data))
	if workers < 1 {
		workers = 1
	}

	rows := make([]*models.SearchResult, len(lines))
	chunk := (len(lines) + workers - 1) / workers
	if chunk < 1 {
		chunk = 1
	}

	var g errgroup.Group
	for start := 0; start < len(lines); start += chunk {
		start, end := start, min(start+chunk, len(lines))
		g.Go(func() error {
			for i := start; i < end; i++ {
				matches := matchLine(m, lines[i], caseSensitive)
				if len(matches) == 0 {
					continue
				}
				rows[i] = &models.SearchResult{
					Path:       path,
					LineNumber: i + 1,
					Line:       lines[i],
					Matches:    matches,
				}
			}
			return nil
		})
	}
	// Workers only write disjoint slots of rows; Wait cannot fail.
	_ = g.Wait()

	var results []models.SearchResult
	for _, row := range rows {
		if row != nil {
			results = append(results, *row)
		}
	}
	return results, nil
}

// decodeLossy converts mapped bytes to a string, replacing invalid
// UTF-8 sequences with U+FFFD. The string copy also decouples the
// result from the mapping's lifetime.
func decodeLossy(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), "�")
}

// splitLines splits on \n with trailing \r stripped per line, assuming
// nothing about a final newline: "a\n" is one line, "a\nb" is two.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
