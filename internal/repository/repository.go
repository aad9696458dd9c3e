package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID is returned when an identifier is not a valid object id.
	ErrInvalidID = errors.New("invalid id")
)
