package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"jobmatch-backend/internal/ats"
)

// PGRepo implements AnalysesRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const analysisColumns = `id, user_id, resume_id, job_description, status, score, result, error, created_at, completed_at`

// Create inserts a new analysis.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (
    id,
    user_id,
    resume_id,
    job_description,
    status,
    score,
    result,
    error,
    created_at,
    completed_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	resultJSON, err := json.Marshal(analysis.Result)
	if err != nil {
		return err
	}

	var errMsg sql.NullString
	if analysis.Error != "" {
		errMsg = sql.NullString{String: analysis.Error, Valid: true}
	}
	var completedAt sql.NullTime
	if analysis.CompletedAt != nil {
		completedAt = sql.NullTime{Time: *analysis.CompletedAt, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		analysis.ID,
		analysis.UserID,
		analysis.ResumeID,
		analysis.JobDescription,
		analysis.Status,
		analysis.Score,
		resultJSON,
		errMsg,
		analysis.CreatedAt,
		completedAt,
	)
	return err
}

// GetByID fetches an analysis by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userId, analysisID string) (Analysis, error) {
	const query = `
SELECT ` + analysisColumns + `
FROM analyses
WHERE user_id = $1 AND id = $2
LIMIT 1`
	analysis, err := scanAnalysis(r.DB.QueryRowContext(ctx, query, userId, analysisID).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	return analysis, nil
}

// ListByUser lists analyses ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userId string, limit, offset int) ([]Analysis, error) {
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
SELECT ` + analysisColumns + `
FROM analyses
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userId, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Analysis
	for rows.Next() {
		analysis, err := scanAnalysis(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, analysis)
	}
	return out, rows.Err()
}

func scanAnalysis(scan func(dest ...any) error) (Analysis, error) {
	var analysis Analysis
	var resumeID sql.NullString
	var errMsg sql.NullString
	var resultJSON []byte
	var completedAt sql.NullTime
	if err := scan(
		&analysis.ID,
		&analysis.UserID,
		&resumeID,
		&analysis.JobDescription,
		&analysis.Status,
		&analysis.Score,
		&resultJSON,
		&errMsg,
		&analysis.CreatedAt,
		&completedAt,
	); err != nil {
		return Analysis{}, err
	}
	if resumeID.Valid {
		analysis.ResumeID = resumeID.String
	}
	if errMsg.Valid {
		analysis.Error = errMsg.String
	}
	if completedAt.Valid {
		analysis.CompletedAt = &completedAt.Time
	}
	if len(resultJSON) > 0 {
		var result ats.AnalysisResult
		if err := json.Unmarshal(resultJSON, &result); err != nil {
			return Analysis{}, err
		}
		analysis.Result = result
	}
	return analysis, nil
}

var _ AnalysesRepo = (*PGRepo)(nil)
