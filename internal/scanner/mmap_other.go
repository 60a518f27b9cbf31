//go:build !unix

package scanner

import (
	"io"
	"os"
)

// fileView is a read-only view of a file's contents. release must be
// called exactly once, after the scan of that file completes.
type fileView struct {
	data    []byte
	release func()
}

// mapFile falls back to a plain read on platforms without unix mmap.
// Semantics are unchanged; only the peak-memory profile differs.
func mapFile(f *os.File, size int64) (*fileView, error) {
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &fileView{data: data, release: func() {}}, nil
}
