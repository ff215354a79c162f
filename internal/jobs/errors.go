package jobs

import "errors"

var (
	// ErrNotFound indicates the job does not exist for the user.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates the request payload failed validation.
	ErrInvalidInput = errors.New("invalid input")
)
