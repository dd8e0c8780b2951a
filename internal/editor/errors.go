package editor

import "errors"

// Errors returned by document operations.
var (
	// ErrInvalidRange indicates an edit range is invalid or out of bounds.
	ErrInvalidRange = errors.New("invalid range")

	// ErrOverlappingEdits indicates two edits in one Replace call overlap.
	ErrOverlappingEdits = errors.New("overlapping edits")
)
