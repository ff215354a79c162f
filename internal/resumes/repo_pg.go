package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"jobmatch-backend/internal/extract"
)

// PGRepo implements ResumesRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `id, user_id, file_name, mime_type, size_bytes, storage_key, raw_text, profile, created_at`

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, resume Resume) error {
	const query = `
INSERT INTO resumes (
    id,
    user_id,
    file_name,
    mime_type,
    size_bytes,
    storage_key,
    raw_text,
    profile,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	profileJSON, err := json.Marshal(resume.Profile)
	if err != nil {
		return err
	}

	var storageKey sql.NullString
	if resume.StorageKey != "" {
		storageKey = sql.NullString{String: resume.StorageKey, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		resume.ID,
		resume.UserID,
		resume.FileName,
		resume.MimeType,
		resume.SizeBytes,
		storageKey,
		resume.RawText,
		profileJSON,
		resume.CreatedAt,
	)
	return err
}

// GetCurrentByUser returns the latest resume for a user.
func (r *PGRepo) GetCurrentByUser(ctx context.Context, userId string) (Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userId))
}

// GetByID fetches a resume by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userId, resumeID string) (Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userId, resumeID))
}

// ListByUser lists resumes ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userId string, limit, offset int) ([]Resume, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userId, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		resume, err := scanResume(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, resume)
	}
	return out, rows.Err()
}

// Delete soft-deletes a resume for a user.
func (r *PGRepo) Delete(ctx context.Context, userId, resumeID string) error {
	const query = `
UPDATE resumes
SET deleted_at = NOW()
WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL`
	res, err := r.DB.ExecContext(ctx, query, userId, resumeID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PGRepo) scanOne(row *sql.Row) (Resume, error) {
	resume, err := scanResume(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return resume, nil
}

func scanResume(scan func(dest ...any) error) (Resume, error) {
	var resume Resume
	var storageKey sql.NullString
	var rawText sql.NullString
	var profileJSON []byte
	if err := scan(
		&resume.ID,
		&resume.UserID,
		&resume.FileName,
		&resume.MimeType,
		&resume.SizeBytes,
		&storageKey,
		&rawText,
		&profileJSON,
		&resume.CreatedAt,
	); err != nil {
		return Resume{}, err
	}
	if storageKey.Valid {
		resume.StorageKey = storageKey.String
	}
	if rawText.Valid {
		resume.RawText = rawText.String
	}
	if len(profileJSON) > 0 {
		var profile extract.Profile
		if err := json.Unmarshal(profileJSON, &profile); err != nil {
			return Resume{}, err
		}
		resume.Profile = profile
	}
	return resume, nil
}

var _ ResumesRepo = (*PGRepo)(nil)
