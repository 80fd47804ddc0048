package store

import "errors"

var (
	// ErrNotFound means an operation referenced an id absent from its collection
	ErrNotFound = errors.New("not found")

	// ErrValidation means a field failed its bound check; nothing was mutated
	ErrValidation = errors.New("validation failed")

	// ErrMalformedImport means an import payload did not parse or was not
	// shaped as expected; nothing was merged
	ErrMalformedImport = errors.New("malformed import")
)
