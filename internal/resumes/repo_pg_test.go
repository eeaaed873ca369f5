package resumes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoUpsertReturnsStoredRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()
	created := now.Add(-time.Hour)

	mock.ExpectQuery("INSERT INTO resumes").
		WithArgs("user-1", "content", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "content", "created_at", "updated_at"}).
			AddRow("user-1", "content", created, now))

	stored, err := repo.Upsert(context.Background(), Resume{UserID: "user-1", Content: "content", UpdatedAt: now})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if !stored.CreatedAt.Equal(created) {
		t.Fatalf("CreatedAt = %v, want %v", stored.CreatedAt, created)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByUserMissingRowIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT (.+) FROM resumes").
		WithArgs("user-404").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	if _, err := repo.GetByUser(context.Background(), "user-404"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
