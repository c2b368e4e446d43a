package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized is returned when a user is not authorized to perform an action
	ErrUnauthorized = errors.New("unauthorized")
	// ErrOwnerNotFound is returned when the calling user does not resolve to a stored user
	ErrOwnerNotFound = errors.New("user not found")
	// ErrInvalidRequest is returned when the request is well formed but breaks a business rule
	ErrInvalidRequest = errors.New("invalid request")
	// ErrConflict is returned when a concurrent write changed the record first
	ErrConflict = errors.New("concurrent modification")
	// ErrConfiguration is returned when required reference data is missing
	ErrConfiguration = errors.New("configuration error")
)
