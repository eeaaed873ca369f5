package resumes

import "errors"

var (
	// ErrNotFound indicates no resume row exists for the user.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates empty content or a malformed improve request.
	ErrInvalidInput = errors.New("invalid input")

	// ErrGenerationFailed wraps completion-client failures.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrExtractionFailed wraps upload text-extraction failures.
	ErrExtractionFailed = errors.New("extraction failed")
)
