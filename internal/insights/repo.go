package insights

import "context"

// Repo defines persistence operations for industry insights.
type Repo interface {
	Create(ctx context.Context, insight IndustryInsight) error
	GetByUser(ctx context.Context, userID string) (IndustryInsight, error)
}
