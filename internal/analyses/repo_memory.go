package analyses

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of AnalysesRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Analysis // userId -> analyses
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Analysis),
	}
}

// Create appends an analysis for a user.
func (r *MemoryRepo) Create(ctx context.Context, analysis Analysis) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[analysis.UserID] = append(r.data[analysis.UserID], analysis)
	return nil
}

// GetByID returns an analysis by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userId, analysisID string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.data[userId]
	for i := range list {
		if list[i].ID == analysisID {
			return list[i], nil
		}
	}
	return Analysis{}, ErrNotFound
}

// ListByUser returns analyses for a user, newest first, honoring limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userId string, limit, offset int) ([]Analysis, error) {
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
	userAnalyses := r.data[userId]
	r.mu.RUnlock()

	if len(userAnalyses) == 0 || offset >= len(userAnalyses) {
		return []Analysis{}, nil
	}

	list := make([]Analysis, len(userAnalyses))
	copy(list, userAnalyses)
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})

	end := len(list)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return list[offset:end], nil
}

var _ AnalysesRepo = (*MemoryRepo)(nil)
