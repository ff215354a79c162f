package analyses

import (
	"time"

	"jobmatch-backend/internal/ats"
)

// AnalysisResponse is the outward-facing representation of an analysis.
type AnalysisResponse struct {
	AnalysisID  string             `json:"analysisId"`
	ResumeID    string             `json:"resumeId,omitempty"`
	Status      string             `json:"status"`
	Score       float64            `json:"score"`
	Result      ats.AnalysisResult `json:"result"`
	Error       string             `json:"error,omitempty"`
	CreatedAt   time.Time          `json:"createdAt"`
	CompletedAt *time.Time         `json:"completedAt,omitempty"`
}

func toResponse(analysis Analysis) AnalysisResponse {
	return AnalysisResponse{
		AnalysisID:  analysis.ID,
		ResumeID:    analysis.ResumeID,
		Status:      analysis.Status,
		Score:       analysis.Score,
		Result:      analysis.Result,
		Error:       analysis.Error,
		CreatedAt:   analysis.CreatedAt,
		CompletedAt: analysis.CompletedAt,
	}
}
