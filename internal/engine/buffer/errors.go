package buffer

import "errors"

// Errors returned by buffer file operations.
var (
	// ErrNoFilename indicates a save was requested without an explicit
	// path and the buffer has no remembered filename.
	ErrNoFilename = errors.New("no filename")
)
