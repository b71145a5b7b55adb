// Package common defines shared sentinel errors used across the application
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing required configuration")

	// Input errors (non-numeric text where an integer is required).
	ErrInvalidNumber = errors.New("invalid number")
)
