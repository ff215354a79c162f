package resumes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"jobmatch-backend/internal/extract"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	resume := Resume{
		ID:         "resume-1",
		UserID:     "user-1",
		FileName:   "resume.pdf",
		MimeType:   "application/pdf",
		SizeBytes:  1024,
		StorageKey: "abc/def_resume.pdf",
		RawText:    "python developer",
		Profile:    extract.Profile{Skills: []string{"Python"}},
		CreatedAt:  time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(
			resume.ID,
			resume.UserID,
			resume.FileName,
			resume.MimeType,
			resume.SizeBytes,
			sqlmock.AnyArg(), // storage_key
			resume.RawText,
			sqlmock.AnyArg(), // profile json
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), resume); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetCurrentByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	created := time.Now().UTC()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "file_name", "mime_type", "size_bytes",
		"storage_key", "raw_text", "profile", "created_at",
	}).AddRow(
		"resume-1", "user-1", "resume.pdf", "application/pdf", int64(1024),
		"abc/def_resume.pdf", "python developer",
		[]byte(`{"skills":["Python"],"education":[],"experience":[],"certifications":[],"languages":[]}`),
		created,
	)

	mock.ExpectQuery("SELECT (.+) FROM resumes").
		WithArgs("user-1").
		WillReturnRows(rows)

	got, err := repo.GetCurrentByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("GetCurrentByUser: %v", err)
	}
	if got.ID != "resume-1" || got.StorageKey != "abc/def_resume.pdf" {
		t.Errorf("unexpected resume: %+v", got)
	}
	if len(got.Profile.Skills) != 1 || got.Profile.Skills[0] != "Python" {
		t.Errorf("profile not decoded: %+v", got.Profile)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetCurrentByUserNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT (.+) FROM resumes").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetCurrentByUser(context.Background(), "user-1")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
