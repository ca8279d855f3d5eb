package models

import "errors"

var (
	// ErrInvalidContentType is returned when a request names a content kind
	// outside the closed set served by the registry.
	ErrInvalidContentType = errors.New("invalid content type")

	// ErrInvalidTransition is returned when the state machine rejects a
	// status change.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrConflict is returned when a versioned update finds the row was
	// modified by someone else since it was read.
	ErrConflict = errors.New("content was modified concurrently")

	// ErrUnauthorized is returned when the caller may not act on a record
	// they do not own.
	ErrUnauthorized = errors.New("unauthorized")
)
