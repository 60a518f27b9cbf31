package executor

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/seekr/internal/pattern"
)

func mustCompile(t *testing.T, term string) *pattern.Matcher {
	t.Helper()
	m, err := pattern.Compile(term, false)
	require.NoError(t, err)
	return m
}

func TestNewPoolClampsWorkers(t *testing.T) {
	assert.Equal(t, 1, NewPool(0).Workers())
	assert.Equal(t, 1, NewPool(-3).Workers())
	assert.Equal(t, 4, NewPool(4).Workers())
}

func TestSearchAggregatesAcrossFiles(t *testing.T) {
	tmpDir := t.TempDir()
	var files []string
	for i := 0; i < 10; i++ {
		path := filepath.Join(tmpDir, fmt.Sprintf("f%02d.txt", i))
		content := fmt.Sprintf("needle one\nfiller\nneedle two in f%02d\n", i)
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		files = append(files, path)
	}

	results, failed := NewPool(4).Search(files, mustCompile(t, "needle"), false, nil)
	assert.Equal(t, 0, failed)
	assert.Len(t, results, 20, "two matching lines per file")

	// Within each file line numbers must ascend, whatever the
	// cross-file completion order was.
	seen := make(map[string][]int)
	for _, r := range results {
		seen[r.Path] = append(seen[r.Path], r.LineNumber)
	}
	require.Len(t, seen, 10)
	for path, lineNumbers := range seen {
		assert.True(t, sort.IntsAreSorted(lineNumbers), "lines out of order for %s: %v", path, lineNumbers)
	}
}

func TestSearchAbsorbsPerFileFailures(t *testing.T) {
	tmpDir := t.TempDir()
	good := filepath.Join(tmpDir, "good.txt")
	require.NoError(t, os.WriteFile(good, []byte("needle\n"), 0644))
	missing := filepath.Join(tmpDir, "deleted-before-scan.txt")

	results, failed := NewPool(2).Search([]string{good, missing}, mustCompile(t, "needle"), false, nil)

	assert.Equal(t, 1, failed, "unreadable file is counted, not fatal")
	require.Len(t, results, 1)
	assert.Equal(t, good, results[0].Path)
}

func TestSearchProgressTicksOncePerFile(t *testing.T) {
	tmpDir := t.TempDir()
	var files []string
	for i := 0; i < 5; i++ {
		path := filepath.Join(tmpDir, fmt.Sprintf("f%d.txt", i))
		// Only some files contain the needle; progress ticks anyway.
		content := "nothing here\n"
		if i%2 == 0 {
			content = "needle\n"
		}
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		files = append(files, path)
	}
	// One entry fails to open; it still ticks.
	files = append(files, filepath.Join(tmpDir, "missing.txt"))

	var ticks []int
	lastTotal := 0
	_, failed := NewPool(3).Search(files, mustCompile(t, "needle"), false, func(done, total int) {
		ticks = append(ticks, done)
		lastTotal = total
	})

	assert.Equal(t, 1, failed)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, ticks, "one tick per completed file")
	assert.Equal(t, 6, lastTotal)
}

func TestSearchEmptyFileList(t *testing.T) {
	results, failed := NewPool(4).Search(nil, mustCompile(t, "x"), false, func(done, total int) {
		t.Error("progress must not tick for an empty run")
	})
	assert.Nil(t, results)
	assert.Equal(t, 0, failed)
}

func TestSearchCaseSensitivityPassedThrough(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("Needle\n"), 0644))

	results, _ := NewPool(1).Search([]string{path}, mustCompile(t, "needle"), true, nil)
	assert.Empty(t, results)

	results, _ = NewPool(1).Search([]string{path}, mustCompile(t, "needle"), false, nil)
	assert.Len(t, results, 1)
}
