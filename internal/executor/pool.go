// Package executor fans file scans out across a bounded worker pool
// and aggregates their results.
package executor

import (
	"sync"

	"github.com/harrison/seekr/internal/models"
	"github.com/harrison/seekr/internal/pattern"
	"github.com/harrison/seekr/internal/scanner"
)

// ProgressFunc receives one tick per completed file, regardless of
// match count. done counts completed files, total is the candidate
// count. Calls happen from a single goroutine.
type ProgressFunc func(done, total int)

// Pool runs file scans with bounded parallelism. Construct one
// explicitly per run and pass it where needed; there is no
// process-global pool.
type Pool struct {
	workers int
}

// NewPool constructs a pool with the given worker count. Counts below
// one are clamped to one.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// Workers returns the pool's worker count.
func (p *Pool) Workers() int {
	return p.workers
}

type fileScan struct {
	results []models.SearchResult
	err     error
}

// Search scans every file through the line scanner and returns the
// aggregated results plus the number of files that failed to scan.
//
// Per-file failures (unreadable file, invalid encoding on the buffered
// path) are absorbed: the file contributes zero results and the run
// continues. A single unreadable file must not abort an otherwise
// successful search. Cross-file result order is unspecified; within one
// file, lines are ascending as guaranteed by the scanner.
//
// caseSensitive selects the match mode; progress may be nil.
func (p *Pool) Search(files []string, m *pattern.Matcher, caseSensitive bool, progress ProgressFunc) ([]models.SearchResult, int) {
	total := len(files)
	if total == 0 {
		return nil, 0
	}

	semaphore := make(chan struct{}, p.workers)
	scans := make(chan fileScan, total)

	var wg sync.WaitGroup
	for _, path := range files {
		semaphore <- struct{}{}
		wg.Add(1)

		go func(path string) {
			defer wg.Done()
			defer func() { <-semaphore }()

			// The inner per-line fan-out of large files uses its own
			// goroutine group, never this semaphore, so the two levels
			// of parallelism cannot deadlock each other.
			results, err := scanner.Scan(path, m, caseSensitive, p.workers)
			scans <- fileScan{results: results, err: err}
		}(path)
	}

	go func() {
		wg.Wait()
		close(scans)
	}()

	var all []models.SearchResult
	var failed, done int
	for scan := range scans {
		done++
		if scan.err != nil {
			failed++
		} else {
			all = append(all, scan.results...)
		}
		if progress != nil {
			progress(done, total)
		}
	}

	return all, failed
}
