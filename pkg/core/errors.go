package core

import "errors"

// Common errors.
var (
	// ErrNotFound reports that the target file does not exist. In-place
	// updates check for it before any temporary file is created.
	ErrNotFound = errors.New("file not found")

	// ErrNoInfoDict reports that the document carries no Info dictionary,
	// so there is nothing to delete or rename.
	ErrNoInfoDict = errors.New("document has no Info dictionary")
)
