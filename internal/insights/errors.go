package insights

import "errors"

var (
	// ErrNotFound indicates no insight row exists for the user.
	ErrNotFound = errors.New("not found")

	// ErrNoIndustry indicates the user has not completed onboarding yet.
	ErrNoIndustry = errors.New("industry not set")

	// ErrInvalidAIResponse indicates the model's text failed the schema check.
	ErrInvalidAIResponse = errors.New("invalid ai response")

	// ErrGenerationFailed wraps completion-client failures.
	ErrGenerationFailed = errors.New("generation failed")
)
