package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrNotAuthenticated indicates no active session exists.
	ErrNotAuthenticated = errors.New("not authenticated")
)
