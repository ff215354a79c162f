package jobs

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for job postings.
type Service struct {
	Repo JobsRepo
}

// CreateInput carries the fields accepted when saving a job posting.
type CreateInput struct {
	Title           string
	Company         string
	Location        string
	Description     string
	Requirements    string
	RequiredSkills  []string
	PreferredSkills []string
	Keywords        []string
	ExperienceLevel string
	SalaryMin       float64
	SalaryMax       float64
	IsActive        *bool
}

// Create validates and records a job posting.
func (s *Service) Create(ctx context.Context, userId string, in CreateInput) (Job, error) {
	if userId == "" {
		return Job{}, ErrInvalidInput
	}
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	if in.Title == "" {
		return Job{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if in.Description == "" {
		return Job{}, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}

	if in.SalaryMin < 0 || in.SalaryMax < 0 {
		return Job{}, fmt.Errorf("%w: salary bounds must be non-negative", ErrInvalidInput)
	}
	if in.SalaryMax > 0 && in.SalaryMin > in.SalaryMax {
		return Job{}, fmt.Errorf("%w: salaryMin exceeds salaryMax", ErrInvalidInput)
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	job := Job{
		ID:              uuid.NewString(),
		UserID:          userId,
		Title:           in.Title,
		Company:         strings.TrimSpace(in.Company),
		Location:        strings.TrimSpace(in.Location),
		Description:     in.Description,
		Requirements:    strings.TrimSpace(in.Requirements),
		RequiredSkills:  trimAll(in.RequiredSkills),
		PreferredSkills: trimAll(in.PreferredSkills),
		Keywords:        trimAll(in.Keywords),
		ExperienceLevel: strings.ToLower(strings.TrimSpace(in.ExperienceLevel)),
		SalaryMin:       in.SalaryMin,
		SalaryMax:       in.SalaryMax,
		IsActive:        active,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, job); err != nil {
		return Job{}, err
	}
	return job, nil
}

// Get returns a job by ID for a user.
func (s *Service) Get(ctx context.Context, userId, jobID string) (Job, error) {
	if userId == "" || jobID == "" {
		return Job{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, userId, jobID)
}

// List returns jobs for a user, newest first.
func (s *Service) List(ctx context.Context, userId string, limit, offset int) ([]Job, error) {
	if userId == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userId, limit, offset)
}

// Delete removes a job for a user.
func (s *Service) Delete(ctx context.Context, userId, jobID string) error {
	if userId == "" || jobID == "" {
		return ErrInvalidInput
	}
	return s.Repo.Delete(ctx, userId, jobID)
}

func trimAll(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
