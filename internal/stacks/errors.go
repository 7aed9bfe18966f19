package stacks

import "errors"

var (
	// ErrNotFound indicates the stack plan does not exist.
	ErrNotFound = errors.New("stack plan not found")
	// ErrInvalidInput indicates the assessment failed validation.
	ErrInvalidInput = errors.New("invalid input")
)
