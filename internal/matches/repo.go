package matches

import "context"

// MatchesRepo defines persistence operations for matches.
type MatchesRepo interface {
	Create(ctx context.Context, match Match) error
	GetByID(ctx context.Context, userId, matchID string) (Match, error)
	ListByUser(ctx context.Context, userId string, limit, offset int) ([]Match, error)
}
