package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Credential store errors.
	ErrCorruptedValue = errors.New("corrupted stored value")
)
