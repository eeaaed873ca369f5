package interviews

import "context"

// Repo defines persistence operations for assessments.
type Repo interface {
	Create(ctx context.Context, assessment Assessment) error
	// ListByUser returns the user's assessments oldest-first.
	ListByUser(ctx context.Context, userID string) ([]Assessment, error)
	// LatestByUser returns the most recent assessment, or ok=false when none exists.
	LatestByUser(ctx context.Context, userID string) (Assessment, bool, error)
}
