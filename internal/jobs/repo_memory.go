package jobs

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of JobsRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Job // userId -> jobs
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Job),
	}
}

// Create appends a job for a user.
func (r *MemoryRepo) Create(ctx context.Context, job Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[job.UserID] = append(r.data[job.UserID], job)
	return nil
}

// GetByID returns a job by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userId, jobID string) (Job, error) {
	if err := ctx.Err(); err != nil {
		return Job{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.data[userId]
	for i := range list {
		if list[i].ID == jobID {
			return list[i], nil
		}
	}
	return Job{}, ErrNotFound
}

// ListByUser returns jobs for a user, newest first, honoring limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userId string, limit, offset int) ([]Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	userJobs := r.data[userId]
	r.mu.RUnlock()

	if len(userJobs) == 0 || offset >= len(userJobs) {
		return []Job{}, nil
	}

	list := make([]Job, len(userJobs))
	copy(list, userJobs)
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})

	end := len(list)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return list[offset:end], nil
}

// Delete removes a job for a user.
func (r *MemoryRepo) Delete(ctx context.Context, userId, jobID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.data[userId]
	for i := range list {
		if list[i].ID == jobID {
			r.data[userId] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

var _ JobsRepo = (*MemoryRepo)(nil)
