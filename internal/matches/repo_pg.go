package matches

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"jobmatch-backend/internal/compat"
)

// PGRepo implements MatchesRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const matchColumns = `id, user_id, resume_id, job_id, result, created_at`

// Create inserts a new match.
func (r *PGRepo) Create(ctx context.Context, match Match) error {
	const query = `
INSERT INTO job_matches (
    id,
    user_id,
    resume_id,
    job_id,
    result,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6)`

	resultJSON, err := json.Marshal(match.Result)
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		match.ID,
		match.UserID,
		match.ResumeID,
		match.JobID,
		resultJSON,
		match.CreatedAt,
	)
	return err
}

// GetByID fetches a match by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userId, matchID string) (Match, error) {
	const query = `
SELECT ` + matchColumns + `
FROM job_matches
WHERE user_id = $1 AND id = $2
LIMIT 1`
	match, err := scanMatch(r.DB.QueryRowContext(ctx, query, userId, matchID).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Match{}, ErrNotFound
		}
		return Match{}, err
	}
	return match, nil
}

// ListByUser lists matches ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userId string, limit, offset int) ([]Match, error) {
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
SELECT ` + matchColumns + `
FROM job_matches
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userId, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Match
	for rows.Next() {
		match, err := scanMatch(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, match)
	}
	return out, rows.Err()
}

func scanMatch(scan func(dest ...any) error) (Match, error) {
	var match Match
	var resumeID sql.NullString
	var jobID sql.NullString
	var resultJSON []byte
	if err := scan(
		&match.ID,
		&match.UserID,
		&resumeID,
		&jobID,
		&resultJSON,
		&match.CreatedAt,
	); err != nil {
		return Match{}, err
	}
	if resumeID.Valid {
		match.ResumeID = resumeID.String
	}
	if jobID.Valid {
		match.JobID = jobID.String
	}
	if len(resultJSON) > 0 {
		var result compat.MatchScore
		if err := json.Unmarshal(resultJSON, &result); err != nil {
			return Match{}, err
		}
		match.Result = result
	}
	return match, nil
}

var _ MatchesRepo = (*PGRepo)(nil)
