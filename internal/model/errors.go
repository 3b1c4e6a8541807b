package model

import "errors"

// Error taxonomy shared by services and controllers. Services wrap these
// with %w so controllers can map them to HTTP statuses with errors.Is while
// the wrapped detail stays in the server-side logs only.
var (
	// ErrValidation marks bad or missing caller input.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a referenced entity that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPersistence marks a store connection or statement failure.
	ErrPersistence = errors.New("persistence failure")
)
