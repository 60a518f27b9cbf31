package models

import "errors"

// Sentinel errors for the two fatal failure classes. Both abort the run
// before any results are printed. Per-file scan failures are ordinary
// errors returned by the scanner and absorbed by the orchestrator, so
// they have no sentinel.
var (
	// ErrInvalidPattern indicates the search term did not compile to a
	// valid regular expression.
	ErrInvalidPattern = errors.New("invalid search pattern")

	// ErrEnumeration indicates an I/O failure while listing a directory
	// during file enumeration.
	ErrEnumeration = errors.New("directory enumeration failed")

	// ErrInvalidEncoding indicates a file contained bytes that are not
	// valid UTF-8. Only the buffered small-file path reports it; the
	// memory-mapped path decodes lossily instead.
	ErrInvalidEncoding = errors.New("invalid UTF-8 encoding")
)
