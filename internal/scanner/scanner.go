// Package scanner produces per-line search results for a single file.
//
// Two strategies exist, selected solely by file size. Files at or under
// LargeFileThreshold are read line by line through a buffered reader;
// larger files are memory-mapped and their lines matched in parallel.
// Both strategies report identical results for the same content, with
// one deliberate difference: the buffered path fails the file on
// invalid UTF-8 while the mapped path decodes lossily. The asymmetry
// mirrors the trade-off the strategies make between strictness and
// throughput on huge inputs.
package scanner

import (
	"os"

	"github.com/harrison/seekr/internal/models"
	"github.com/harrison/seekr/internal/pattern"
)

// LargeFileThreshold is the byte length above which a file is scanned
// with the memory-mapped strategy instead of the buffered one.
const LargeFileThreshold = 10_000_000

// Scan searches one file and returns its matching lines in ascending
// line order. workers bounds the per-line fan-out of the large-file
// strategy; the small-file strategy is sequential and ignores it.
//
// Any error (open, read, map, invalid encoding on the small path) means
// the file produced no results; callers decide whether that fails the
// run or is absorbed.
func Scan(path string, m *pattern.Matcher, caseSensitive bool, workers int) ([]models.SearchResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	if info.Size() > LargeFileThreshold {
		return scanLarge(f, path, info.Size(), m, caseSensitive, workers)
	}
	return scanSmall(f, path, m, caseSensitive)
}

// matchLine runs the matcher over one line, folding case when the
// search is case-insensitive. Returned spans are relative to the folded
// copy; foldASCII keeps that copy byte-aligned with the original, so
// the spans are valid boundaries of the original line too.
func matchLine(m *pattern.Matcher, line string, caseSensitive bool) []models.Match {
	searched := line
	if !caseSensitive {
		searched = foldASCII(line)
	}
	return m.FindAll(searched)
}

// foldASCII lower-cases ASCII letters only. Unlike strings.ToLower it
// can never change the byte length of its input, which keeps match
// offsets computed on the folded copy valid against the original line.
// Non-ASCII letters are left untouched and therefore always match
// case-sensitively; full Unicode folding is out of scope.
func foldASCII(s string) string {
	i := 0
	for ; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			break
		}
	}
	if i == len(s) {
		return s
	}

	b := []byte(s)
	for ; i < len(b); i++ {
		if c := b[i]; c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
