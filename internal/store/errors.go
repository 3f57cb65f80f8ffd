package store

import "errors"

var (
	// ErrDuplicateKey is returned by Add operations when the id exists.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrUnavailable wraps every backend failure so callers can separate
	// storage trouble from domain errors. It is retryable from the
	// caller's point of view.
	ErrUnavailable = errors.New("storage unavailable")
)
