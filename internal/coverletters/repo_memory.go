package coverletters

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo used in dev mode and tests.
type MemoryRepo struct {
	mu      sync.RWMutex
	letters map[string]CoverLetter
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{letters: make(map[string]CoverLetter)}
}

func (r *MemoryRepo) Create(ctx context.Context, letter CoverLetter) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.letters[letter.ID] = letter
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, userID, letterID string) (CoverLetter, error) {
	if err := ctx.Err(); err != nil {
		return CoverLetter{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	letter, ok := r.letters[letterID]
	if !ok || letter.UserID != userID {
		return CoverLetter{}, ErrNotFound
	}
	return letter, nil
}

func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]CoverLetter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []CoverLetter
	for _, letter := range r.letters {
		if letter.UserID == userID {
			out = append(out, letter)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, userID, letterID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	letter, ok := r.letters[letterID]
	if !ok || letter.UserID != userID {
		return ErrNotFound
	}
	delete(r.letters, letterID)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
