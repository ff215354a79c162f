package analyses

import "errors"

var (
	// ErrNotFound indicates the analysis does not exist for the user.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates the request payload failed validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoResume indicates the user has no resume to analyze.
	ErrNoResume = errors.New("no resume on file")
	// ErrJobNotFound indicates the referenced job posting does not exist.
	ErrJobNotFound = errors.New("job not found")
)
