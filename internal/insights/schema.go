package insights

import (
	"encoding/json"
	"fmt"
	"strings"

	"careercoach-backend/internal/llm"
)

// insightPayload mirrors the JSON shape requested from the model.
type insightPayload struct {
	SalaryRanges      []SalaryRange `json:"salaryRanges"`
	GrowthRate        *float64      `json:"growthRate"`
	DemandLevel       string        `json:"demandLevel"`
	TopSkills         []string      `json:"topSkills"`
	MarketOutlook     string        `json:"marketOutlook"`
	KeyTrends         []string      `json:"keyTrends"`
	RecommendedSkills []string      `json:"recommendedSkills"`
}

var (
	validDemandLevels   = map[string]bool{"High": true, "Medium": true, "Low": true}
	validMarketOutlooks = map[string]bool{"Positive": true, "Neutral": true, "Negative": true}
)

// parsePayload validates the model text against the requested schema.
// Any mismatch, not just a parse failure, is ErrInvalidAIResponse.
func parsePayload(text string) (insightPayload, error) {
	var payload insightPayload
	if err := json.Unmarshal([]byte(llm.StripCodeFence(text)), &payload); err != nil {
		return insightPayload{}, fmt.Errorf("%w: %v", ErrInvalidAIResponse, err)
	}

	if len(payload.SalaryRanges) == 0 {
		return insightPayload{}, fmt.Errorf("%w: salaryRanges is required", ErrInvalidAIResponse)
	}
	for i, sr := range payload.SalaryRanges {
		if strings.TrimSpace(sr.Role) == "" {
			return insightPayload{}, fmt.Errorf("%w: salaryRanges[%d].role is required", ErrInvalidAIResponse, i)
		}
	}
	if payload.GrowthRate == nil {
		return insightPayload{}, fmt.Errorf("%w: growthRate is required", ErrInvalidAIResponse)
	}
	if !validDemandLevels[payload.DemandLevel] {
		return insightPayload{}, fmt.Errorf("%w: demandLevel %q is not one of High, Medium, Low", ErrInvalidAIResponse, payload.DemandLevel)
	}
	if !validMarketOutlooks[payload.MarketOutlook] {
		return insightPayload{}, fmt.Errorf("%w: marketOutlook %q is not one of Positive, Neutral, Negative", ErrInvalidAIResponse, payload.MarketOutlook)
	}
	if len(payload.TopSkills) == 0 {
		return insightPayload{}, fmt.Errorf("%w: topSkills is required", ErrInvalidAIResponse)
	}
	if len(payload.KeyTrends) == 0 {
		return insightPayload{}, fmt.Errorf("%w: keyTrends is required", ErrInvalidAIResponse)
	}
	if len(payload.RecommendedSkills) == 0 {
		return insightPayload{}, fmt.Errorf("%w: recommendedSkills is required", ErrInvalidAIResponse)
	}

	return payload, nil
}
