package coverletters

import "errors"

var (
	// ErrNotFound indicates the letter does not exist or belongs to another user.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrGenerationFailed wraps completion-client failures.
	ErrGenerationFailed = errors.New("generation failed")
)
