package analyses

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"jobmatch-backend/internal/ats"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	completed := time.Now().UTC()
	analysis := Analysis{
		ID:             "analysis-1",
		UserID:         "user-1",
		ResumeID:       "resume-1",
		JobDescription: "python engineer",
		Status:         StatusCompleted,
		Score:          72.5,
		Result:         ats.AnalysisResult{ATSScore: 72.5},
		CreatedAt:      time.Now().UTC(),
		CompletedAt:    &completed,
	}

	mock.ExpectExec("INSERT INTO analyses").
		WithArgs(
			analysis.ID,
			analysis.UserID,
			analysis.ResumeID,
			analysis.JobDescription,
			analysis.Status,
			analysis.Score,
			sqlmock.AnyArg(), // result json
			sqlmock.AnyArg(), // error
			sqlmock.AnyArg(), // created_at
			sqlmock.AnyArg(), // completed_at
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), analysis); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT (.+) FROM analyses").
		WithArgs("user-1", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(context.Background(), "user-1", "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
