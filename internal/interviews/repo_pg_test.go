package interviews

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	assessment := Assessment{
		ID:        "assessment-1",
		UserID:    "user-1",
		QuizScore: 80,
		Questions: []QuestionResult{
			{Question: "Q1", Answer: "a", UserAnswer: "a", IsCorrect: true, Explanation: "because"},
		},
		Category:  CategoryTechnical,
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO assessments").
		WithArgs(
			assessment.ID,
			assessment.UserID,
			assessment.QuizScore,
			sqlmock.AnyArg(),
			assessment.Category,
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), assessment); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoLatestByUserEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT (.+) FROM assessments").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, ok, err := repo.LatestByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("LatestByUser: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for empty table")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
