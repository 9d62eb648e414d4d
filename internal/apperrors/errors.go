// Package apperrors defines the error taxonomy shared by all services.
// Controllers map these sentinels onto HTTP statuses with errors.Is.
package apperrors

import "errors"

var (
	// ErrNotFound is returned when a referenced entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidState is returned when an operation targets an attempt in the
	// wrong lifecycle state, e.g. submitting an answer after finish.
	ErrInvalidState = errors.New("invalid state")

	// ErrAlreadyExists is returned on uniqueness conflicts, e.g. registering
	// an email that is already taken.
	ErrAlreadyExists = errors.New("already exists")

	// ErrUnauthorized covers bad credentials, blocked accounts and invalid or
	// expired tokens.
	ErrUnauthorized = errors.New("unauthorized")
)
