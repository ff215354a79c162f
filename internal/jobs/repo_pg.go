package jobs

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements JobsRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const jobColumns = `id, user_id, title, company, location, description, requirements, required_skills, preferred_skills, keywords, experience_level, salary_min, salary_max, is_active, created_at`

// Create inserts a new job posting.
func (r *PGRepo) Create(ctx context.Context, job Job) error {
	const query = `
INSERT INTO jobs (
    id,
    user_id,
    title,
    company,
    location,
    description,
    requirements,
    required_skills,
    preferred_skills,
    keywords,
    experience_level,
    salary_min,
    salary_max,
    is_active,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	required, err := json.Marshal(emptyIfNil(job.RequiredSkills))
	if err != nil {
		return err
	}
	preferred, err := json.Marshal(emptyIfNil(job.PreferredSkills))
	if err != nil {
		return err
	}
	keywords, err := json.Marshal(emptyIfNil(job.Keywords))
	if err != nil {
		return err
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		job.ID,
		job.UserID,
		job.Title,
		job.Company,
		job.Location,
		job.Description,
		job.Requirements,
		required,
		preferred,
		keywords,
		job.ExperienceLevel,
		job.SalaryMin,
		job.SalaryMax,
		job.IsActive,
		job.CreatedAt,
	)
	return err
}

// GetByID fetches a job by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userId, jobID string) (Job, error) {
	const query = `
SELECT ` + jobColumns + `
FROM jobs
WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL
LIMIT 1`
	job, err := scanJob(r.DB.QueryRowContext(ctx, query, userId, jobID).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Job{}, ErrNotFound
		}
		return Job{}, err
	}
	return job, nil
}

// ListByUser lists jobs ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userId string, limit, offset int) ([]Job, error) {
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
SELECT ` + jobColumns + `
FROM jobs
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userId, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Job
	for rows.Next() {
		job, err := scanJob(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	return out, rows.Err()
}

// Delete soft-deletes a job for a user.
func (r *PGRepo) Delete(ctx context.Context, userId, jobID string) error {
	const query = `
UPDATE jobs
SET deleted_at = NOW()
WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL`
	res, err := r.DB.ExecContext(ctx, query, userId, jobID)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanJob(scan func(dest ...any) error) (Job, error) {
	var job Job
	var company, location, requirements, experienceLevel sql.NullString
	var salaryMin, salaryMax sql.NullFloat64
	var required, preferred, keywords []byte
	if err := scan(
		&job.ID,
		&job.UserID,
		&job.Title,
		&company,
		&location,
		&job.Description,
		&requirements,
		&required,
		&preferred,
		&keywords,
		&experienceLevel,
		&salaryMin,
		&salaryMax,
		&job.IsActive,
		&job.CreatedAt,
	); err != nil {
		return Job{}, err
	}
	if company.Valid {
		job.Company = company.String
	}
	if location.Valid {
		job.Location = location.String
	}
	if requirements.Valid {
		job.Requirements = requirements.String
	}
	if experienceLevel.Valid {
		job.ExperienceLevel = experienceLevel.String
	}
	if salaryMin.Valid {
		job.SalaryMin = salaryMin.Float64
	}
	if salaryMax.Valid {
		job.SalaryMax = salaryMax.Float64
	}
	for _, pair := range []struct {
		raw  []byte
		dest *[]string
	}{
		{required, &job.RequiredSkills},
		{preferred, &job.PreferredSkills},
		{keywords, &job.Keywords},
	} {
		if len(pair.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(pair.raw, pair.dest); err != nil {
			return Job{}, err
		}
	}
	return job, nil
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

var _ JobsRepo = (*PGRepo)(nil)
