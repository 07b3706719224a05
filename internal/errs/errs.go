// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

var (
	// ErrNotFound indicates the requested entity or document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrVersionConflict indicates the content store rejected a write carrying
	// a stale version token (sha).
	ErrVersionConflict = errors.New("version conflict")

	// ErrMissingConfig indicates the proxy has no token or repository configured.
	// Fatal and non-retryable: nothing downstream can succeed.
	ErrMissingConfig = errors.New("missing content store configuration")

	// ErrInvalidFilename indicates a filename that is empty or attempts
	// to escape the data directory.
	ErrInvalidFilename = errors.New("invalid filename")

	// ErrAlreadyExists indicates a uniqueness violation (e.g., email taken).
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnauthorized indicates failed authentication.
	ErrUnauthorized = errors.New("unauthorized")
)
