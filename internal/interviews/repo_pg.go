package interviews

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

// Create inserts an assessment row with its question results as JSONB.
func (r *PGRepo) Create(ctx context.Context, assessment Assessment) error {
	const query = `
INSERT INTO assessments (id, user_id, quiz_score, questions, category, improvement_tip, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	questions, err := json.Marshal(assessment.Questions)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		assessment.ID,
		assessment.UserID,
		assessment.QuizScore,
		questions,
		assessment.Category,
		nullableString(assessment.ImprovementTip),
		assessment.CreatedAt,
	)
	return err
}

// ListByUser returns the user's assessments oldest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Assessment, error) {
	const query = `
SELECT id, user_id, quiz_score, questions, category, improvement_tip, created_at
FROM assessments
WHERE user_id = $1
ORDER BY created_at ASC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Assessment
	for rows.Next() {
		assessment, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, assessment)
	}
	return out, rows.Err()
}

// LatestByUser returns the newest assessment, if any.
func (r *PGRepo) LatestByUser(ctx context.Context, userID string) (Assessment, bool, error) {
	const query = `
SELECT id, user_id, quiz_score, questions, category, improvement_tip, created_at
FROM assessments
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT 1`

	assessment, err := scanAssessment(r.DB.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Assessment{}, false, nil
		}
		return Assessment{}, false, err
	}
	return assessment, true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row rowScanner) (Assessment, error) {
	var assessment Assessment
	var questions []byte
	var tip sql.NullString
	err := row.Scan(
		&assessment.ID,
		&assessment.UserID,
		&assessment.QuizScore,
		&questions,
		&assessment.Category,
		&tip,
		&assessment.CreatedAt,
	)
	if err != nil {
		return Assessment{}, err
	}
	if err := json.Unmarshal(questions, &assessment.Questions); err != nil {
		return Assessment{}, err
	}
	assessment.ImprovementTip = tip.String
	return assessment, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

var _ Repo = (*PGRepo)(nil)
