package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidSubmission is returned when a submission reported by the
	// source lacks a slug or carries an unparsable timestamp.
	ErrInvalidSubmission = errors.New("invalid submission")

	// ErrProblemNotFound is returned when the source has no problem for a slug.
	ErrProblemNotFound = errors.New("problem not found")

	// ErrMalformedEntry is returned when a stored entry lacks a field the
	// sync relies on (slug, review date).
	ErrMalformedEntry = errors.New("malformed tracked entry")
)
