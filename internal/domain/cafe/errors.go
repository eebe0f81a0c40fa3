package cafe

import "errors"

// ===============================
// Error taxonomy
// ===============================

var (
	// ErrValidation marks missing or malformed caller input.
	ErrValidation = errors.New("validation error")

	// ErrConstraintViolation marks a uniqueness or not-null violation at the store.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrNotFound marks an id or filter that matched no record.
	ErrNotFound = errors.New("cafe not found")

	// ErrStoreUnavailable marks an underlying persistence failure.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrEmptyCollection is returned by a random pick over an empty store.
	ErrEmptyCollection = errors.New("no cafes in store")
)
