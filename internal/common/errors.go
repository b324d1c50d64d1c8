// Package common defines the sentinel errors shared by the credential store,
// token service, article repository and access gate. Callers match them with
// errors.Is; handlers translate them into HTTP status codes.
package common

import "errors"

var (
	// Caller-supplied data failed a shape or non-empty check.
	ErrInvalidInput = errors.New("invalid input")

	// Username or email already taken.
	ErrDuplicateIdentity = errors.New("username or email already exists")

	// Referenced user or article does not exist.
	ErrNotFound = errors.New("not found")

	// Authentication failures.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("token is missing")
	ErrInvalidToken       = errors.New("token is invalid")
	ErrExpiredToken       = errors.New("token has expired")

	// Authenticated caller does not own the resource.
	ErrForbidden = errors.New("forbidden")
)
