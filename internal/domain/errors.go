package domain

import "errors"

// Error kinds. Services wrap these with %w; the HTTP boundary maps each
// kind to a fixed status and a generic message, never the wrapped detail.
var (
	ErrInvalid         = errors.New("invalid input")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("not found")
	ErrUpstream        = errors.New("upstream failure")
)
