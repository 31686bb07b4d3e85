package rec

import "errors"

// Store construction errors.
var (
	ErrInvalidField   = errors.New("invalid field name")
	ErrDuplicateField = errors.New("duplicate field name")
	ErrInvalidKind    = errors.New("unknown kind")
)

// Query and mutation errors. These are returned before any record is
// scanned; a query that matches nothing is not an error.
var (
	ErrUnknownField = errors.New("unknown field")
	ErrTypeMismatch = errors.New("type mismatch")
)

// Store operation errors.
var (
	ErrNotFound   = errors.New("record not found")
	ErrValueCount = errors.New("wrong number of values")
	ErrNoSource   = errors.New("no source configured")
	ErrNoSink     = errors.New("no sink configured")
)
