package coverletters

import "context"

// Repo defines persistence operations for cover letters.
type Repo interface {
	Create(ctx context.Context, letter CoverLetter) error
	GetByID(ctx context.Context, userID, letterID string) (CoverLetter, error)
	ListByUser(ctx context.Context, userID string) ([]CoverLetter, error)
	Delete(ctx context.Context, userID, letterID string) error
}
