// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidOutcome is returned when a quiz outcome is not one of the
	// known values.
	ErrInvalidOutcome = errors.New("invalid outcome")

	// ErrInvalidWordHash is returned when a word hash cannot be parsed from
	// its string form.
	ErrInvalidWordHash = errors.New("invalid word hash")
)
