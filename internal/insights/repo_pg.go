package insights

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts the user's insight row.
func (r *PGRepo) Create(ctx context.Context, insight IndustryInsight) error {
	const query = `
INSERT INTO industry_insights (user_id, industry, salary_ranges, growth_rate, demand_level, top_skills, market_outlook, key_trends, recommended_skills, last_updated, next_update)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	salaryRanges, err := json.Marshal(insight.SalaryRanges)
	if err != nil {
		return err
	}
	topSkills, err := json.Marshal(insight.TopSkills)
	if err != nil {
		return err
	}
	keyTrends, err := json.Marshal(insight.KeyTrends)
	if err != nil {
		return err
	}
	recommendedSkills, err := json.Marshal(insight.RecommendedSkills)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(ctx, query,
		insight.UserID,
		insight.Industry,
		salaryRanges,
		insight.GrowthRate,
		insight.DemandLevel,
		topSkills,
		insight.MarketOutlook,
		keyTrends,
		recommendedSkills,
		insight.LastUpdated,
		insight.NextUpdate,
	)
	return err
}

// GetByUser returns the user's insight row.
func (r *PGRepo) GetByUser(ctx context.Context, userID string) (IndustryInsight, error) {
	const query = `
SELECT user_id, industry, salary_ranges, growth_rate, demand_level, top_skills, market_outlook, key_trends, recommended_skills, last_updated, next_update
FROM industry_insights
WHERE user_id = $1
LIMIT 1`

	var insight IndustryInsight
	var salaryRanges, topSkills, keyTrends, recommendedSkills []byte
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&insight.UserID,
		&insight.Industry,
		&salaryRanges,
		&insight.GrowthRate,
		&insight.DemandLevel,
		&topSkills,
		&insight.MarketOutlook,
		&keyTrends,
		&recommendedSkills,
		&insight.LastUpdated,
		&insight.NextUpdate,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return IndustryInsight{}, ErrNotFound
		}
		return IndustryInsight{}, err
	}

	if err := json.Unmarshal(salaryRanges, &insight.SalaryRanges); err != nil {
		return IndustryInsight{}, err
	}
	if err := json.Unmarshal(topSkills, &insight.TopSkills); err != nil {
		return IndustryInsight{}, err
	}
	if err := json.Unmarshal(keyTrends, &insight.KeyTrends); err != nil {
		return IndustryInsight{}, err
	}
	if err := json.Unmarshal(recommendedSkills, &insight.RecommendedSkills); err != nil {
		return IndustryInsight{}, err
	}
	return insight, nil
}

var _ Repo = (*PGRepo)(nil)
