// Package logger renders live search progress to the terminal.
//
// Progress output is purely observational: it goes to the status
// stream, is overdrawn in place with carriage returns, and never forms
// part of the final result report.
package logger

import (
	"fmt"
	"io"
	"sync"
)

// ProgressBar represents an ASCII progress bar with color support.
// It is safe for concurrent use.
type ProgressBar struct {
	current     int
	total       int
	width       int
	enableColor bool
	prefix      string
	mu          sync.RWMutex
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(total, width int, enableColor bool) *ProgressBar {
	if width < 1 {
		width = 10
	}
	return &ProgressBar{
		total:       total,
		width:       width,
		enableColor: enableColor,
	}
}

// Update sets the current progress value.
func (pb *ProgressBar) Update(current int) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.current = current
}

// Increment increments the current progress by 1.
func (pb *ProgressBar) Increment() {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.current++
}

// Current returns the current progress value.
func (pb *ProgressBar) Current() int {
	pb.mu.RLock()
	defer pb.mu.RUnlock()
	return pb.current
}

// Percentage returns the progress percentage (0-100).
func (pb *ProgressBar) Percentage() int {
	pb.mu.RLock()
	defer pb.mu.RUnlock()
	return pb.percentage()
}

func (pb *ProgressBar) percentage() int {
	if pb.total == 0 {
		return 0
	}
	perc := (pb.current * 100) / pb.total
	if perc > 100 {
		perc = 100
	}
	if perc < 0 {
		perc = 0
	}
	return perc
}

// SetPrefix sets a custom prefix for the progress bar.
func (pb *ProgressBar) SetPrefix(prefix string) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.prefix = prefix
}

// Render generates the ASCII progress bar string.
func (pb *ProgressBar) Render() string {
	pb.mu.RLock()
	defer pb.mu.RUnlock()

	perc := pb.percentage()
	filled := (perc * pb.width) / 100
	if filled > pb.width {
		filled = pb.width
	}

	bar := "["
	for i := 0; i < pb.width; i++ {
		if i < filled {
			bar += "="
		} else {
			bar += " "
		}
	}
	bar += "]"

	result := fmt.Sprintf("%s%s %d/%d (%d%%)", pb.prefix, bar, pb.current, pb.total, perc)

	if pb.enableColor && perc < 100 {
		result = fmt.Sprintf("\033[36m%s\033[0m", result) // Cyan for in-progress
	} else if pb.enableColor && perc == 100 {
		result = fmt.Sprintf("\033[32m%s\033[0m", result) // Green for complete
	}

	return result
}

// Draw redraws the bar in place on w using a carriage return. Meant for
// a live status stream such as stderr on a TTY.
func (pb *ProgressBar) Draw(w io.Writer) {
	fmt.Fprintf(w, "\r%s", pb.Render())
}

// Finish terminates the in-place bar with a newline so subsequent
// output starts on a fresh line.
func (pb *ProgressBar) Finish(w io.Writer) {
	fmt.Fprintf(w, "\r%s\n", pb.Render())
}
