package errors

import "errors"

var (
	ErrNotFound = errors.New("registration not found")

	ErrEmailTaken = errors.New("email already registered")
)
