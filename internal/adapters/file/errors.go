package file

import "errors"

// Sentinel kinds for file adapter errors.
var (
	ErrMissingFile     = errors.New("file not found or unreadable")
	ErrMalformedRecord = errors.New("malformed record")
)
