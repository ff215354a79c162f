package analyses

import (
	"time"

	"jobmatch-backend/internal/ats"
)

// Analysis statuses.
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Analysis is one ATS compatibility run of a resume against a job description.
type Analysis struct {
	ID             string
	UserID         string
	ResumeID       string
	JobDescription string
	Status         string
	Score          float64
	Result         ats.AnalysisResult
	Error          string
	CreatedAt      time.Time
	CompletedAt    *time.Time
}
