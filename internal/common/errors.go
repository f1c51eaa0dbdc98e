// Package common defines shared constants and sentinel errors used across
// client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Storage-level errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors raised before any request leaves the client.
	ErrEmptyCredentials = errors.New("email and password are required")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrSealedToken  = errors.New("stored token cannot be opened")
)
