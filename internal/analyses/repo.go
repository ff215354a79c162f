package analyses

import "context"

// AnalysesRepo defines persistence operations for analyses.
type AnalysesRepo interface {
	Create(ctx context.Context, analysis Analysis) error
	GetByID(ctx context.Context, userId, analysisID string) (Analysis, error)
	ListByUser(ctx context.Context, userId string, limit, offset int) ([]Analysis, error)
}
