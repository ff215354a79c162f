package resumes

import "errors"

var (
	// ErrNotFound indicates the resume does not exist for the user.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates the request payload failed validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrUnsupportedFile indicates the uploaded file type cannot be parsed.
	ErrUnsupportedFile = errors.New("unsupported file type")
)
