package resumes

import "context"

// Repo defines persistence operations for resumes.
type Repo interface {
	// Upsert creates or replaces the user's single resume row.
	Upsert(ctx context.Context, resume Resume) (Resume, error)
	GetByUser(ctx context.Context, userID string) (Resume, error)
}
