package insights

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repo used in dev mode and tests.
type MemoryRepo struct {
	mu       sync.RWMutex
	insights map[string]IndustryInsight
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{insights: make(map[string]IndustryInsight)}
}

func (r *MemoryRepo) Create(ctx context.Context, insight IndustryInsight) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insights[insight.UserID] = insight
	return nil
}

func (r *MemoryRepo) GetByUser(ctx context.Context, userID string) (IndustryInsight, error) {
	if err := ctx.Err(); err != nil {
		return IndustryInsight{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	insight, ok := r.insights[userID]
	if !ok {
		return IndustryInsight{}, ErrNotFound
	}
	return insight, nil
}

var _ Repo = (*MemoryRepo)(nil)
