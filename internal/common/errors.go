package common

import "errors"

var (
	// Auth state errors.
	ErrAuthRequired = errors.New("Authentication required")

	// Input validation.
	ErrInvalidInput = errors.New("invalid input")

	// Service-level errors.
	ErrNotFound     = errors.New("not found")
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid token")
)

var (
	// Identity errors raised by the development backend.
	ErrAlreadyExists = errors.New("already exists")
	ErrTokenExpired  = errors.New("token expired")
)
