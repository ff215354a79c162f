package matches

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of MatchesRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Match // userId -> matches
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Match),
	}
}

// Create appends a match for a user.
func (r *MemoryRepo) Create(ctx context.Context, match Match) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[match.UserID] = append(r.data[match.UserID], match)
	return nil
}

// GetByID returns a match by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userId, matchID string) (Match, error) {
	if err := ctx.Err(); err != nil {
		return Match{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.data[userId]
	for i := range list {
		if list[i].ID == matchID {
			return list[i], nil
		}
	}
	return Match{}, ErrNotFound
}

// ListByUser returns matches for a user, newest first, honoring limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userId string, limit, offset int) ([]Match, error) {
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
	userMatches := r.data[userId]
	r.mu.RUnlock()

	if len(userMatches) == 0 || offset >= len(userMatches) {
		return []Match{}, nil
	}

	list := make([]Match, len(userMatches))
	copy(list, userMatches)
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})

	end := len(list)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	return list[offset:end], nil
}

var _ MatchesRepo = (*MemoryRepo)(nil)
