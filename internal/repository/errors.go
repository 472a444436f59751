package repository

import "errors"

var (
	// ErrNotFound is returned by mutations addressing a record that does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when an insert violates a uniqueness constraint.
	ErrConflict = errors.New("record already exists")
)
