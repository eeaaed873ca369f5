package coverletters

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"careercoach-backend/internal/llm"
	"careercoach-backend/internal/users"
)

// Service contains business logic for cover letters.
type Service struct {
	Repo  Repo
	Users users.Repo
	LLM   llm.Client
}

// Generate writes a cover letter for the job and persists it.
func (s *Service) Generate(ctx context.Context, userID, jobTitle, companyName, jobDescription string) (CoverLetter, error) {
	jobTitle = strings.TrimSpace(jobTitle)
	companyName = strings.TrimSpace(companyName)
	if jobTitle == "" || companyName == "" {
		return CoverLetter{}, ErrInvalidInput
	}

	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return CoverLetter{}, err
	}

	content, err := s.LLM.Complete(ctx, buildPrompt(user, jobTitle, companyName, jobDescription).Request())
	if err != nil {
		if errors.Is(err, llm.ErrEmptyCompletion) {
			return CoverLetter{}, err
		}
		return CoverLetter{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	letter := CoverLetter{
		ID:             uuid.NewString(),
		UserID:         user.ID,
		Content:        content,
		JobDescription: jobDescription,
		CompanyName:    companyName,
		JobTitle:       jobTitle,
		Status:         StatusCompleted,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, letter); err != nil {
		return CoverLetter{}, err
	}
	return letter, nil
}

// List returns the user's letters newest-first.
func (s *Service) List(ctx context.Context, userID string) ([]CoverLetter, error) {
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.Repo.ListByUser(ctx, userID)
}

// Get returns a single letter owned by the user.
func (s *Service) Get(ctx context.Context, userID, letterID string) (CoverLetter, error) {
	if letterID == "" {
		return CoverLetter{}, ErrInvalidInput
	}
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		return CoverLetter{}, err
	}
	return s.Repo.GetByID(ctx, userID, letterID)
}

// Delete removes a letter owned by the user.
func (s *Service) Delete(ctx context.Context, userID, letterID string) error {
	if letterID == "" {
		return ErrInvalidInput
	}
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.Repo.Delete(ctx, userID, letterID)
}
