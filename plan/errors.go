package plan

import "errors"

var (
	// ErrSyntax wraps any failure to parse document text.
	ErrSyntax = errors.New("syntax error")

	// ErrNotASequence is returned by slide operations when the slides
	// field holds something other than a sequence.
	ErrNotASequence = errors.New("not a sequence")

	// ErrIndexOutOfRange is returned when a slide index falls outside
	// the list.
	ErrIndexOutOfRange = errors.New("index out of range")
)
