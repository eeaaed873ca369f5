package users

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Upsert(ctx context.Context, user User) error {
	const query = `
INSERT INTO users (id, email, full_name, picture_url, industry, experience, skills, bio, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
ON CONFLICT (id) DO UPDATE SET
  email = EXCLUDED.email,
  full_name = EXCLUDED.full_name,
  picture_url = EXCLUDED.picture_url,
  updated_at = now()`
	skills, err := marshalSkills(user.Skills)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		user.ID,
		user.Email,
		nullableString(user.FullName),
		nullableString(user.PictureURL),
		nullableString(user.Industry),
		user.Experience,
		skills,
		nullableString(user.Bio),
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, userID string) (User, error) {
	const query = `
SELECT id, email, full_name, picture_url, industry, experience, skills, bio, created_at, updated_at
FROM users
WHERE id = $1
LIMIT 1`
	var user User
	var fullName sql.NullString
	var pictureURL sql.NullString
	var industry sql.NullString
	var experience sql.NullInt64
	var skillsRaw []byte
	var bio sql.NullString
	var updatedAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.Email,
		&fullName,
		&pictureURL,
		&industry,
		&experience,
		&skillsRaw,
		&bio,
		&user.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	if fullName.Valid {
		user.FullName = fullName.String
	}
	if pictureURL.Valid {
		user.PictureURL = pictureURL.String
	}
	if industry.Valid {
		user.Industry = industry.String
	}
	if experience.Valid {
		user.Experience = int(experience.Int64)
	}
	if len(skillsRaw) > 0 {
		if err := json.Unmarshal(skillsRaw, &user.Skills); err != nil {
			return User{}, err
		}
	}
	if bio.Valid {
		user.Bio = bio.String
	}
	if updatedAt.Valid {
		user.UpdatedAt = updatedAt.Time
	} else {
		user.UpdatedAt = time.Now().UTC()
	}
	return user, nil
}

func (r *PGRepo) UpdateProfile(ctx context.Context, userID, industry string, experience int, skills []string, bio string) error {
	const query = `
UPDATE users
SET industry = $1, experience = $2, skills = $3, bio = $4, updated_at = now()
WHERE id = $5`
	skillsJSON, err := marshalSkills(skills)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, query,
		nullableString(industry),
		experience,
		skillsJSON,
		nullableString(bio),
		userID,
	)
	if err != nil {
		return err
	}
	updated, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if updated == 0 {
		return ErrNotFound
	}
	return nil
}

func marshalSkills(skills []string) ([]byte, error) {
	if skills == nil {
		skills = []string{}
	}
	return json.Marshal(skills)
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

var _ Repo = (*PGRepo)(nil)
