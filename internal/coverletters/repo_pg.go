package coverletters

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new cover letter.
func (r *PGRepo) Create(ctx context.Context, letter CoverLetter) error {
	const query = `
INSERT INTO cover_letters (id, user_id, content, job_description, company_name, job_title, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.DB.ExecContext(ctx, query,
		letter.ID,
		letter.UserID,
		letter.Content,
		nullableString(letter.JobDescription),
		letter.CompanyName,
		letter.JobTitle,
		letter.Status,
		letter.CreatedAt,
	)
	return err
}

// GetByID fetches a letter owned by the user.
func (r *PGRepo) GetByID(ctx context.Context, userID, letterID string) (CoverLetter, error) {
	const query = `
SELECT id, user_id, content, job_description, company_name, job_title, status, created_at
FROM cover_letters
WHERE user_id = $1 AND id = $2
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userID, letterID))
}

// ListByUser lists the user's letters newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]CoverLetter, error) {
	const query = `
SELECT id, user_id, content, job_description, company_name, job_title, status, created_at
FROM cover_letters
WHERE user_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CoverLetter
	for rows.Next() {
		var letter CoverLetter
		var jobDescription sql.NullString
		if err := rows.Scan(
			&letter.ID,
			&letter.UserID,
			&letter.Content,
			&jobDescription,
			&letter.CompanyName,
			&letter.JobTitle,
			&letter.Status,
			&letter.CreatedAt,
		); err != nil {
			return nil, err
		}
		if jobDescription.Valid {
			letter.JobDescription = jobDescription.String
		}
		out = append(out, letter)
	}
	return out, rows.Err()
}

// Delete removes a letter owned by the user.
func (r *PGRepo) Delete(ctx context.Context, userID, letterID string) error {
	const query = `DELETE FROM cover_letters WHERE user_id = $1 AND id = $2`
	res, err := r.DB.ExecContext(ctx, query, userID, letterID)
	if err != nil {
		return err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) scanOne(row *sql.Row) (CoverLetter, error) {
	var letter CoverLetter
	var jobDescription sql.NullString
	err := row.Scan(
		&letter.ID,
		&letter.UserID,
		&letter.Content,
		&jobDescription,
		&letter.CompanyName,
		&letter.JobTitle,
		&letter.Status,
		&letter.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CoverLetter{}, ErrNotFound
		}
		return CoverLetter{}, err
	}
	if jobDescription.Valid {
		letter.JobDescription = jobDescription.String
	}
	return letter, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)
