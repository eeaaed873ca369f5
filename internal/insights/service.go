package insights

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"careercoach-backend/internal/llm"
	"careercoach-backend/internal/users"
)

// Service contains business logic for industry insights.
type Service struct {
	Repo  Repo
	Users users.Repo
	LLM   llm.Client
}

// GetInsights returns the caller's insight row, generating it on first call.
// An existing row is returned unchanged, even past its NextUpdate timestamp.
func (s *Service) GetInsights(ctx context.Context, userID string) (IndustryInsight, error) {
	existing, err := s.Repo.GetByUser(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return IndustryInsight{}, err
	}

	user, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return IndustryInsight{}, err
	}
	if strings.TrimSpace(user.Industry) == "" {
		return IndustryInsight{}, ErrNoIndustry
	}

	text, err := s.LLM.Complete(ctx, buildPrompt(user.Industry).Request())
	if err != nil {
		if errors.Is(err, llm.ErrEmptyCompletion) {
			return IndustryInsight{}, err
		}
		return IndustryInsight{}, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	payload, err := parsePayload(text)
	if err != nil {
		return IndustryInsight{}, err
	}

	now := time.Now().UTC()
	insight := IndustryInsight{
		UserID:            userID,
		Industry:          user.Industry,
		SalaryRanges:      payload.SalaryRanges,
		GrowthRate:        *payload.GrowthRate,
		DemandLevel:       payload.DemandLevel,
		TopSkills:         payload.TopSkills,
		MarketOutlook:     payload.MarketOutlook,
		KeyTrends:         payload.KeyTrends,
		RecommendedSkills: payload.RecommendedSkills,
		LastUpdated:       now,
		NextUpdate:        now.Add(refreshInterval),
	}
	if err := s.Repo.Create(ctx, insight); err != nil {
		return IndustryInsight{}, err
	}
	return insight, nil
}
