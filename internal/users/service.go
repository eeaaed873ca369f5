package users

import (
	"context"
	"errors"
	"strings"
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// UpsertFromAuth persists the user identity from OAuth so that per-user rows
// have a stable owner.
func (s *Service) UpsertFromAuth(ctx context.Context, user User) error {
	if s == nil || s.Repo == nil {
		return errors.New("users service not configured")
	}
	if strings.TrimSpace(user.ID) == "" || strings.TrimSpace(user.Email) == "" {
		return errors.New("user id and email are required")
	}
	return s.Repo.Upsert(ctx, user)
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}

// UpdateProfile stores the onboarding fields used to build prompts.
func (s *Service) UpdateProfile(ctx context.Context, userID, industry string, experience int, skills []string, bio string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, errors.New("user id is required")
	}
	if strings.TrimSpace(industry) == "" {
		return User{}, errors.New("industry is required")
	}
	if experience < 0 {
		return User{}, errors.New("experience must not be negative")
	}
	cleaned := make([]string, 0, len(skills))
	for _, skill := range skills {
		if trimmed := strings.TrimSpace(skill); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	if err := s.Repo.UpdateProfile(ctx, userID, strings.TrimSpace(industry), experience, cleaned, strings.TrimSpace(bio)); err != nil {
		return User{}, err
	}
	return s.Repo.GetByID(ctx, userID)
}
