package resumes

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory Repo used in dev mode and tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	resumes map[string]Resume
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{resumes: make(map[string]Resume)}
}

func (r *MemoryRepo) Upsert(ctx context.Context, resume Resume) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.resumes[resume.UserID]; ok {
		resume.CreatedAt = existing.CreatedAt
	} else {
		resume.CreatedAt = resume.UpdatedAt
	}
	r.resumes[resume.UserID] = resume
	return resume, nil
}

func (r *MemoryRepo) GetByUser(ctx context.Context, userID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	resume, ok := r.resumes[userID]
	if !ok {
		return Resume{}, ErrNotFound
	}
	return resume, nil
}

var _ Repo = (*MemoryRepo)(nil)
