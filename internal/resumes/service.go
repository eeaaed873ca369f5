package resumes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"careercoach-backend/internal/extract"
	"careercoach-backend/internal/llm"
	"careercoach-backend/internal/shared/cache"
	"careercoach-backend/internal/shared/storage/object"
	"careercoach-backend/internal/shared/telemetry"
	"careercoach-backend/internal/users"
)

// Service contains business logic for the resume assistant.
type Service struct {
	Repo        Repo
	Users       users.Repo
	LLM         llm.Client
	Store       object.ObjectStore
	Invalidator cache.Invalidator
}

// Save upserts the caller's resume and invalidates any cached render of it.
// An invalidation failure is logged, never propagated.
func (s *Service) Save(ctx context.Context, userID, content string) (Resume, error) {
	if strings.TrimSpace(content) == "" {
		return Resume{}, ErrInvalidInput
	}
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		return Resume{}, err
	}

	stored, err := s.Repo.Upsert(ctx, Resume{
		UserID:    userID,
		Content:   content,
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return Resume{}, err
	}

	if err := s.Invalidator.Invalidate(ctx, CacheKey(userID)); err != nil {
		telemetry.Warn("resume cache invalidation failed", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
	}
	return stored, nil
}

// Get returns the caller's resume.
func (s *Service) Get(ctx context.Context, userID string) (Resume, error) {
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		return Resume{}, err
	}
	return s.Repo.GetByUser(ctx, userID)
}

// ImproveWithAI rewrites one resume section and returns the text verbatim.
// The stored resume is never touched.
func (s *Service) ImproveWithAI(ctx context.Context, userID, current, sectionType string) (string, error) {
	if strings.TrimSpace(current) == "" || strings.TrimSpace(sectionType) == "" {
		return "", ErrInvalidInput
	}

	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}

	improved, err := s.LLM.Complete(ctx, buildImprovePrompt(user.Industry, sectionType, current).Request())
	if err != nil {
		if errors.Is(err, llm.ErrEmptyCompletion) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	return improved, nil
}

// Upload stores the uploaded document, extracts its text, and saves the
// result as the caller's resume content.
func (s *Service) Upload(ctx context.Context, userID, fileName string, body io.Reader) (Resume, error) {
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		return Resume{}, err
	}

	key, size, mimeType, err := s.Store.Save(ctx, userID, fileName, body)
	if err != nil {
		return Resume{}, err
	}
	telemetry.Info("resume document stored", map[string]any{
		"userId": userID,
		"key":    key,
		"bytes":  size,
		"mime":   mimeType,
	})

	text, err := extract.ExtractText(ctx, s.Store, key, mimeType, fileName)
	if err != nil {
		return Resume{}, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}
	if strings.TrimSpace(text) == "" {
		return Resume{}, fmt.Errorf("%w: document contains no text", ErrExtractionFailed)
	}

	return s.Save(ctx, userID, text)
}
