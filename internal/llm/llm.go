package llm

import (
	"context"
	"errors"
)

// CompletionRequest carries exactly one system and one user message.
type CompletionRequest struct {
	System      string
	Prompt      string
	Temperature float32
}

// Client abstracts hosted completion providers.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// ErrEmptyCompletion is returned when the provider responds with blank text.
var ErrEmptyCompletion = errors.New("empty completion")

// Unconfigured stands in when no provider credentials are present, so the
// rest of the app can still boot in dev.
type Unconfigured struct{}

// Complete always fails.
func (Unconfigured) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	return "", errors.New("llm client not configured")
}

var _ Client = Unconfigured{}
