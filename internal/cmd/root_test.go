package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harrison/seekr/internal/models"
)

// executeCommand runs a fresh root command with the given arguments and
// returns its captured stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	tmpDir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return tmpDir
}

func TestSearchEndToEndCaseInsensitive(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.txt": "foo bar\nFOO baz\n",
	})

	out, err := executeCommand(t, "--directory", dir, "--term", "foo")
	require.NoError(t, err)

	assert.Contains(t, out, "2 matches found:")
	assert.Contains(t, out, "a.txt:1 foo bar")
	// Rendered with original-case text.
	assert.Contains(t, out, "a.txt:2 FOO baz")
}

func TestSearchEndToEndCaseSensitive(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.txt": "foo bar\nFOO baz\n",
	})

	out, err := executeCommand(t, "-d", dir, "--term", "foo", "--case-sensitive")
	require.NoError(t, err)

	assert.Contains(t, out, "1 matches found:")
	assert.NotContains(t, out, "FOO baz")
}

func TestSearchEmptyDirectory(t *testing.T) {
	out, err := executeCommand(t, "-d", t.TempDir(), "--term", "anything")
	require.NoError(t, err)
	assert.Equal(t, "No matches found.\n", out)
}

func TestSearchExtensionFilter(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.txt": "needle\n",
		"a.md":  "needle\n",
	})

	out, err := executeCommand(t, "-d", dir, "--term", "needle", "--extension", "txt")
	require.NoError(t, err)

	assert.Contains(t, out, "1 matches found:")
	assert.Contains(t, out, "a.txt")
	assert.NotContains(t, out, "a.md")
}

func TestSearchRecursionFlag(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"top.txt":        "needle\n",
		"sub/nested.txt": "needle\n",
	})

	out, err := executeCommand(t, "-d", dir, "--term", "needle")
	require.NoError(t, err)
	assert.Contains(t, out, "2 matches found:", "recursion defaults to enabled")

	out, err = executeCommand(t, "-d", dir, "--term", "needle", "--recursive=false")
	require.NoError(t, err)
	assert.Contains(t, out, "1 matches found:")
	assert.NotContains(t, out, "nested.txt")
}

func TestSearchRegexMode(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.txt": "cat\ncut\ncot\ncup\n",
	})

	out, err := executeCommand(t, "-d", dir, "--term", "c.t", "--regex")
	require.NoError(t, err)
	assert.Contains(t, out, "3 matches found:")

	// Without --regex the dot is literal and nothing matches.
	out, err = executeCommand(t, "-d", dir, "--term", "c.t")
	require.NoError(t, err)
	assert.Equal(t, "No matches found.\n", out)
}

func TestSearchInvalidRegexIsFatal(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.txt": "content\n",
	})

	out, err := executeCommand(t, "-d", dir, "--term", "[bad", "--regex")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrInvalidPattern))
	assert.Empty(t, out, "no results may be printed on a fatal pattern error")
}

func TestSearchMissingDirectoryIsFatal(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone")

	out, err := executeCommand(t, "-d", missing, "--term", "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrEnumeration))
	assert.Empty(t, out)
}

func TestSearchTermIsRequired(t *testing.T) {
	_, err := executeCommand(t, "-d", ".")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "term")
}

func TestSearchIdempotent(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.txt": "needle one\nneedle two\n",
		"b.txt": "needle three\n",
	})

	first, err := executeCommand(t, "-d", dir, "--term", "needle")
	require.NoError(t, err)
	second, err := executeCommand(t, "-d", dir, "--term", "needle")
	require.NoError(t, err)

	// Cross-file order may vary between runs, the set of lines may not.
	assert.ElementsMatch(t, splitReportLines(first), splitReportLines(second))
}

func splitReportLines(report string) []string {
	var lines []string
	for _, line := range strings.Split(report, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
