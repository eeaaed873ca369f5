package interviews

import "errors"

var (
	// ErrInvalidQuizFormat indicates the model's JSON lacked a questions array.
	ErrInvalidQuizFormat = errors.New("invalid quiz format")

	// ErrInvalidInput indicates a malformed save request.
	ErrInvalidInput = errors.New("invalid input")

	// ErrGenerationFailed wraps completion-client failures on the quiz call.
	ErrGenerationFailed = errors.New("generation failed")
)
