package domain

import "errors"

// Domain errors represent business logic failures. Infrastructure
// failures (authentication, not-found, remote rejections) live in the
// connector's own taxonomy.
var (
	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
