package insights

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoGetByUserRoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"user_id", "industry", "salary_ranges", "growth_rate", "demand_level",
		"top_skills", "market_outlook", "key_trends", "recommended_skills",
		"last_updated", "next_update",
	}).AddRow(
		"user-1", "Software",
		[]byte(`[{"role":"Backend Engineer","min":90000,"max":180000,"median":130000,"location":"US"}]`),
		12.5, "High",
		[]byte(`["Go","SQL"]`), "Positive",
		[]byte(`["AI tooling"]`), []byte(`["Terraform"]`),
		now, now.Add(7*24*time.Hour),
	)
	mock.ExpectQuery("SELECT (.+) FROM industry_insights").
		WithArgs("user-1").
		WillReturnRows(rows)

	insight, err := repo.GetByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetByUser: %v", err)
	}
	if insight.Industry != "Software" {
		t.Fatalf("industry = %q", insight.Industry)
	}
	if len(insight.SalaryRanges) != 1 || insight.SalaryRanges[0].Role != "Backend Engineer" {
		t.Fatalf("salaryRanges = %+v", insight.SalaryRanges)
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

	mock.ExpectQuery("SELECT (.+) FROM industry_insights").
		WithArgs("user-404").
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	if _, err := repo.GetByUser(context.Background(), "user-404"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
