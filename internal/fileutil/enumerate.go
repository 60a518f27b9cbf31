// Package fileutil enumerates the candidate files of a search run.
//
// Enumeration is strict: any I/O error while listing a directory aborts
// the whole enumeration. There is no partial-results policy at this
// stage; best-effort recovery only applies later, per scanned file.
package fileutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/harrison/seekr/internal/models"
)

// Enumerate walks root and returns the paths of every candidate file.
// A candidate is a regular file whose extension matches the filter (see
// MatchesExtension). When recursive is false only the root directory's
// immediate entries are considered.
//
// Any listing error is returned wrapped in models.ErrEnumeration and
// fails the run. Hidden files and directories are not treated
// specially.
func Enumerate(root, extension string, recursive bool) ([]string, error) {
	var files []string

	if !recursive {
		entries, err := os.ReadDir(root)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrEnumeration, err)
		}
		for _, entry := range entries {
			if entry.Type().IsRegular() && MatchesExtension(entry.Name(), extension) {
				files = append(files, filepath.Join(root, entry.Name()))
			}
		}
		sort.Strings(files)
		return files, nil
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() && MatchesExtension(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrEnumeration, err)
	}

	// WalkDir already visits in lexical order; keep the guarantee
	// explicit for the non-recursive branch's sake as well.
	return files, nil
}

// MatchesExtension reports whether a filename passes the extension
// filter. An empty filter admits every file. The filter is compared
// without its leading dot, exactly and case-sensitively, so "txt" does
// not admit "a.TXT", and a file without any extension never matches a
// non-empty filter.
func MatchesExtension(name, extension string) bool {
	if extension == "" {
		return true
	}
	return strings.TrimPrefix(filepath.Ext(name), ".") == extension
}
