package interviews

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo used in dev mode and tests.
type MemoryRepo struct {
	mu          sync.RWMutex
	assessments map[string][]Assessment
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{assessments: make(map[string][]Assessment)}
}

func (r *MemoryRepo) Create(ctx context.Context, assessment Assessment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assessments[assessment.UserID] = append(r.assessments[assessment.UserID], assessment)
	return nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]Assessment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := append([]Assessment(nil), r.assessments[userID]...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) LatestByUser(ctx context.Context, userID string) (Assessment, bool, error) {
	all, err := r.ListByUser(ctx, userID)
	if err != nil || len(all) == 0 {
		return Assessment{}, false, err
	}
	return all[len(all)-1], true, nil
}

var _ Repo = (*MemoryRepo)(nil)
