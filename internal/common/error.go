// Package common defines shared sentinel errors used across the storefront
// services. Callers should use errors.Is to match these values; the HTTP
// layer maps them to status codes.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Input validation errors.
	ErrorValidation = errors.New("validation error")

	// Auth errors.
	ErrorMissingToken  = errors.New("missing token")
	ErrInvalidToken    = errors.New("invalid token")
	ErrTokenExpired    = errors.New("token expired")
	ErrorWrongPassword = errors.New("wrong password")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")
)
