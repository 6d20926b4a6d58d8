// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when no user matches an email or token.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when the email is already taken by another account.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrMissingParameters is returned when a signup field is absent or empty.
	ErrMissingParameters = errors.New("missing parameters")

	// ErrInvalidCredentials is returned for an unknown email or a wrong password.
	// It deliberately does not say which one.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrUnauthorized is returned when a bearer token does not resolve to a user.
	ErrUnauthorized = errors.New("unauthorized")
)
