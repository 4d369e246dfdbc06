package importer

import "errors"

var (
	// ErrMissingColumn is returned when a configured column is absent from the header.
	ErrMissingColumn = errors.New("missing column")
	// ErrMalformedRow is returned when a row lacks the fields needed for path and size.
	ErrMalformedRow = errors.New("malformed row")
	// ErrInvalidSize is returned when a size is not a non-negative integer.
	ErrInvalidSize = errors.New("invalid size")
	// ErrIO wraps failures reading the input stream.
	ErrIO = errors.New("read failed")
)
