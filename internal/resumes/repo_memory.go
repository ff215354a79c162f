package resumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of ResumesRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Resume // userId -> resumes
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Resume),
	}
}

// Create appends a resume for a user.
func (r *MemoryRepo) Create(ctx context.Context, resume Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[resume.UserID] = append(r.data[resume.UserID], resume)
	return nil
}

// GetCurrentByUser returns the most recently uploaded resume for a user.
func (r *MemoryRepo) GetCurrentByUser(ctx context.Context, userId string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	list, ok := r.data[userId]
	if !ok || len(list) == 0 {
		return Resume{}, ErrNotFound
	}
	return list[len(list)-1], nil
}

// GetByID returns a resume by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userId, resumeID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.data[userId]
	for i := range list {
		if list[i].ID == resumeID {
			return list[i], nil
		}
	}
	return Resume{}, ErrNotFound
}

// ListByUser returns resumes for a user, newest first, honoring limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userId string, limit, offset int) ([]Resume, error) {
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
	userResumes := r.data[userId]
	r.mu.RUnlock()

	if len(userResumes) == 0 || offset >= len(userResumes) {
		return []Resume{}, nil
	}

	list := make([]Resume, len(userResumes))
	copy(list, userResumes)
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})

	end := len(list)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return list[offset:end], nil
}

// Delete removes a resume for a user.
func (r *MemoryRepo) Delete(ctx context.Context, userId, resumeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	list := r.data[userId]
	for i := range list {
		if list[i].ID == resumeID {
			r.data[userId] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

var _ ResumesRepo = (*MemoryRepo)(nil)
