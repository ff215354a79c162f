package jobs

import "context"

// JobsRepo defines persistence operations for job postings.
type JobsRepo interface {
	Create(ctx context.Context, job Job) error
	GetByID(ctx context.Context, userId, jobID string) (Job, error)
	ListByUser(ctx context.Context, userId string, limit, offset int) ([]Job, error)
	Delete(ctx context.Context, userId, jobID string) error
}
