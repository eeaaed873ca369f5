package resumes

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Upsert creates or replaces the user's resume row and returns the stored row.
func (r *PGRepo) Upsert(ctx context.Context, resume Resume) (Resume, error) {
	const query = `
INSERT INTO resumes (user_id, content, created_at, updated_at)
VALUES ($1, $2, $3, $3)
ON CONFLICT (user_id) DO UPDATE
SET content = EXCLUDED.content, updated_at = EXCLUDED.updated_at
RETURNING user_id, content, created_at, updated_at`

	var stored Resume
	err := r.DB.QueryRowContext(ctx, query, resume.UserID, resume.Content, resume.UpdatedAt).Scan(
		&stored.UserID,
		&stored.Content,
		&stored.CreatedAt,
		&stored.UpdatedAt,
	)
	if err != nil {
		return Resume{}, err
	}
	return stored, nil
}

// GetByUser returns the user's resume row.
func (r *PGRepo) GetByUser(ctx context.Context, userID string) (Resume, error) {
	const query = `
SELECT user_id, content, created_at, updated_at
FROM resumes
WHERE user_id = $1
LIMIT 1`

	var resume Resume
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&resume.UserID,
		&resume.Content,
		&resume.CreatedAt,
		&resume.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

var _ Repo = (*PGRepo)(nil)
