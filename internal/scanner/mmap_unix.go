//go:build unix

package scanner

import (
	"os"

	"golang.org/x/sys/unix"
)

// fileView is a read-only view of a file's contents. release must be
// called exactly once, after the scan of that file completes.
type fileView struct {
	data    []byte
	release func()
}

// mapFile maps the file read-only. The view must not outlive the scan:
// the orchestrator relies on prompt release to bound peak memory across
// concurrently scanned large files.
func mapFile(f *os.File, size int64) (*fileView, error) {
	if size == 0 {
		return &fileView{data: nil, release: func() {}}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}

	return &fileView{
		data: data,
		release: func() {
			// Unmap failure leaves nothing actionable mid-scan.
			_ = unix.Munmap(data)
		},
	}, nil
}
