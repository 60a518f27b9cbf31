// Package display formats search results for terminal output.
package display

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/harrison/seekr/internal/models"
)

// UseColor reports whether colored output should be emitted on w.
// Color is used only when w is a terminal and the color library has not
// been globally disabled (NO_COLOR, dumb terminals).
func UseColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return !color.NoColor && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// RenderResults prints the final report: a summary count followed by
// one line per result, path and line number prefixed and every match
// span highlighted. With no results it prints exactly
// "No matches found." and nothing else.
func RenderResults(w io.Writer, results []models.SearchResult, useColor bool) {
	yellow := color.New(color.FgYellow)
	green := color.New(color.FgGreen)
	blue := color.New(color.FgBlue)
	// UseColor already decided TTY-ness for the target writer, so
	// override the library's own stdout-based detection either way.
	for _, c := range []*color.Color{yellow, green, blue} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	if len(results) == 0 {
		fmt.Fprintln(w, yellow.Sprint("No matches found."))
		return
	}

	fmt.Fprintf(w, "\n%s matches found:\n\n", green.Sprint(strconv.Itoa(len(results))))

	for _, r := range results {
		fmt.Fprintf(w, "%s:%s %s\n",
			blue.Sprint(r.Path),
			yellow.Sprint(strconv.Itoa(r.LineNumber)),
			HighlightLine(r.Line, r.Matches, useColor),
		)
	}
}

// HighlightLine rebuilds a line with every match span wrapped in a
// highlight, non-matched spans passed through verbatim. Spans are
// applied in stored order against the original text. Offsets were
// computed on a byte-aligned folded copy so they are expected to be
// valid boundaries; spans that still fall out of range are clamped
// rather than allowed to panic.
func HighlightLine(line string, matches []models.Match, useColor bool) string {
	highlight := color.New(color.BgYellow)
	if useColor {
		highlight.EnableColor()
	} else {
		highlight.DisableColor()
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		start, end := m.Start, m.End
		if start < last {
			start = last
		}
		if start > len(line) {
			start = len(line)
		}
		if end > len(line) {
			end = len(line)
		}
		if end <= start {
			continue
		}
		b.WriteString(line[last:start])
		b.WriteString(highlight.Sprint(line[start:end]))
		last = end
	}
	b.WriteString(line[last:])
	return b.String()
}
