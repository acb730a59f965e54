package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidMode indicates an unknown retrieval mode.
	ErrInvalidMode = errors.New("invalid mode")

	// ErrUnknownFeature indicates no sample mapping exists for the
	// requested add-on feature keyword.
	ErrUnknownFeature = errors.New("unknown feature")

	// ErrRateLimited indicates the GitHub API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")
)
